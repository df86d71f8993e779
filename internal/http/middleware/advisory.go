package middleware

import "net/http"

// Advisory short-circuits every data route with one fixed payload when no
// backend is configured. The distinction matters to clients: this is
// "operation not performed", not an empty result.
func Advisory(configured bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if configured {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"backend not configured"}`))
		})
	}
}
