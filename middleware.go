package apidocs

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Middleware wraps an http.Handler, the shape shared across the Go
// middleware ecosystem. Router.Use, WithGroupMiddleware, and
// WithMountMiddleware all accept it.
type Middleware func(next http.Handler) http.Handler

// Recovery returns middleware that converts a handler panic into a 500
// response. The panic value and stack are logged through the given logger,
// keeping recovery output on the same sink as the Logger middleware. A nil
// logger falls back to slog.Default.
func Recovery(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
