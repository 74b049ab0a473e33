package apidocs

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// Builder produces the base Document: metadata, security schemes, and any
// routes the application chooses to pre-register. The function is opaque to
// the startup sequence and called exactly once; ctx is the application
// context handle, passed through so the builder may vary output by
// environment.
type Builder func(ctx context.Context) *Document

// Setup is the single controlled startup path: it runs the builder, merges
// the collected routes, seals the result into a Registry, and mounts the
// configured visualizers. Initialize must be called exactly once.
type Setup struct {
	builder     Builder
	config      Config
	collections []*Collection
	logger      *slog.Logger
	middleware  []Middleware

	initialized atomic.Bool
}

// SetupOption configures a Setup.
type SetupOption func(*Setup)

// WithConfig sets the visualizer configuration. Defaults to DefaultConfig.
func WithConfig(cfg Config) SetupOption {
	return func(s *Setup) {
		s.config = cfg
	}
}

// WithCollections supplies route collections to merge into the builder's
// base document, in order.
func WithCollections(collections ...*Collection) SetupOption {
	return func(s *Setup) {
		s.collections = append(s.collections, collections...)
	}
}

// WithLogger sets the logger used for startup warnings. Defaults to
// slog.Default.
func WithLogger(logger *slog.Logger) SetupOption {
	return func(s *Setup) {
		s.logger = logger
	}
}

// WithMountMiddleware wraps every mounted visualizer handler, applied in the
// order given.
func WithMountMiddleware(mw ...Middleware) SetupOption {
	return func(s *Setup) {
		s.middleware = append(s.middleware, mw...)
	}
}

// NewSetup creates a Setup around the given builder function.
func NewSetup(builder Builder, opts ...SetupOption) *Setup {
	s := &Setup{
		builder: builder,
		config:  DefaultConfig(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize runs the startup sequence: validate the configuration, invoke
// the builder, merge the collections, build the Registry, and mount the
// visualizers on mux. Duplicate routes and configuration errors fail
// startup; dangling security references are logged as warnings and do not.
//
// Initialize panics when called a second time. The registry has exactly one
// write for the process lifetime.
func (s *Setup) Initialize(ctx context.Context, mux Mux) (*Registry, error) {
	if s.initialized.Swap(true) {
		panic("apidocs: Setup.Initialize called more than once")
	}
	if s.builder == nil {
		return nil, ErrNilBuilder
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	base := s.builder(ctx)
	doc, warnings, err := Finalize(base, s.collections...)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		s.logger.Warn("dangling security scheme reference",
			"route", w.Key.String(),
			"scheme", w.Scheme,
		)
	}

	reg, err := NewRegistry(doc)
	if err != nil {
		return nil, err
	}

	target := mux
	if len(s.middleware) > 0 {
		target = &middlewareMux{next: mux, middleware: s.middleware}
	}
	if err := MountVisualizers(target, s.config, reg); err != nil {
		return nil, err
	}

	return reg, nil
}

// middlewareMux wraps every registered handler in the configured middleware.
type middlewareMux struct {
	next       Mux
	middleware []Middleware
}

func (m *middlewareMux) Handle(pattern string, handler http.Handler) {
	for i := len(m.middleware) - 1; i >= 0; i-- {
		handler = m.middleware[i](handler)
	}
	m.next.Handle(pattern, handler)
}
