package apidocs

import (
	"errors"
	"fmt"
)

// Sentinel errors for document lifecycle misuse.
var (
	ErrNilDocument  = errors.New("apidocs: nil document")
	ErrNilRoute     = errors.New("apidocs: nil route descriptor")
	ErrNilRegistry  = errors.New("apidocs: nil registry")
	ErrNilBuilder   = errors.New("apidocs: nil builder function")
	ErrNotFinalized = errors.New("apidocs: document has not been finalized")
)

// DuplicateRouteError reports that two sources registered the same
// (method, path) route key. It always fails the whole finalize operation;
// no registration wins.
type DuplicateRouteError struct {
	Key    RouteKey
	Source string // collection that supplied the colliding descriptor, if any
}

// Error returns the colliding route key and, when known, the collection it
// came from.
func (e *DuplicateRouteError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("duplicate route %s registered by collection %q", e.Key, e.Source)
	}
	return fmt.Sprintf("duplicate route %s", e.Key)
}

// ConfigError reports an invalid visualizer configuration: a kind enabled
// without a mandatory field, or a mount path claimed by two different
// endpoints.
type ConfigError struct {
	Kind  string // "redoc", "scalar", or "swagger"
	Field string // the offending configuration field
	Path  string // set when the field's path conflicts with another endpoint
}

// Error names the visualizer kind, the field, and the conflicting path when
// there is one.
func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("visualizer %s: %s %q conflicts with another endpoint", e.Kind, e.Field, e.Path)
	}
	return fmt.Sprintf("visualizer %s: missing required field %q", e.Kind, e.Field)
}
