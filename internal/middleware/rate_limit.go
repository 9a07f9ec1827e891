package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/baharkarakas/mindbank/internal/api/httpx"
)

// RateLimit allows rps requests per second with the given burst across all
// callers. rps <= 0 disables limiting.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	lim := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow() {
				httpx.WriteError(w, http.StatusTooManyRequests, "Too many requests, please wait a moment")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
