package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/heartmarshall/florarium-backend/internal/auth"
	"github.com/heartmarshall/florarium-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (auth.Device, error)
}

// Auth resolves the bearer token into a device identity. Requests without
// a token pass through anonymously; invalid tokens are rejected.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			device, err := validator.ValidateToken(token)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := ctxutil.WithDevice(r.Context(), ctxutil.Device{ID: device.ID, Name: device.Name})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireDevice rejects anonymous requests.
func RequireDevice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.DeviceFromCtx(r.Context()); !ok {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}

// extractBearerToken reads the Authorization header. Browsers cannot set
// headers on WebSocket handshakes, so upgrades may pass ?token= instead.
func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > len("Bearer ") && strings.EqualFold(h[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	if h == "" && strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
		return r.URL.Query().Get("token")
	}
	return ""
}
