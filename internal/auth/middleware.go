package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const staffIDKey ctxKey = "staff_id"

// StaffIDFromContext returns the authenticated staff id. Handlers pass it
// explicitly into anything that attributes authorship; nothing below the
// HTTP layer reads it from a context.
func StaffIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(staffIDKey)
	id, ok := v.(string)
	return id, ok
}

func RequireAuth(jwtSvc *JWT) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			token := strings.TrimPrefix(h, "Bearer ")

			sid, err := jwtSvc.Verify(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), staffIDKey, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
