package apidocs

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// maxLimiterEntries caps the per-key limiter map; the map is reset when the
// cap is hit.
const maxLimiterEntries = 4096

// RateLimit returns middleware applying a per-client-IP token bucket.
func RateLimit(rps float64, burst int) Middleware {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}

			mu.Lock()
			lim, ok := limiters[key]
			if !ok {
				if len(limiters) >= maxLimiterEntries {
					limiters = make(map[string]*rate.Limiter)
				}
				lim = rate.NewLimiter(rate.Limit(rps), burst)
				limiters[key] = lim
			}
			mu.Unlock()

			if !lim.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
