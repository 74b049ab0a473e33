package apidocs

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Router is a thin net/http router that collects a RouteDescriptor for every
// registered route. The descriptors accumulate in an explicit Collection
// owned by the Router, not in process-wide registration state, and are
// handed to Finalize through Descriptors once registration is complete.
// Router implements http.Handler and Mux.
type Router struct {
	mux        *http.ServeMux
	middleware []Middleware
	collection *Collection

	mu sync.Mutex
}

// NewRouter creates an empty Router with a fresh automatic collection.
func NewRouter() *Router {
	return &Router{
		mux:        http.NewServeMux(),
		collection: NewCollection("automatic"),
	}
}

// Use adds middleware, applied to every request in the order added.
func (r *Router) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

// Descriptors returns the automatic collection accumulated by registration.
func (r *Router) Descriptors() *Collection {
	return r.collection
}

// Handle registers a raw handler for a "METHOD /path" pattern without
// contributing a route descriptor. This is how the visualizer mounts and
// other undocumented endpoints attach. It also satisfies Mux.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mux.Handle(pattern, handler)
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := http.Handler(r.mux)
	for i := len(r.middleware) - 1; i >= 0; i-- {
		handler = r.middleware[i](handler)
	}
	handler.ServeHTTP(w, req)
}

// ListenAndServe starts an HTTP server on the given address. It blocks until
// the context is cancelled, then shuts down gracefully.
func (r *Router) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// mount registers the handler with the mux under the raw pattern and appends
// the descriptor to the automatic collection.
func (r *Router) mount(pattern string, rd *RouteDescriptor, handler http.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mux.Handle(rd.method+" "+pattern, handler)
	r.collection.Add(rd)
}

func (r *Router) prefix() string          { return "" }
func (r *Router) defaultTags() []string   { return nil }
func (r *Router) defaultSecurity() string { return "" }

func (r *Router) wrapHandler(h http.Handler) http.Handler { return h }
