package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ardiansk/shop-service/internal/auth"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type contextKey string

const userIDKey contextKey = "userID"

const bearerPrefix = "Bearer "

// WithUserID returns a copy of ctx carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the user ID set by the Auth middleware.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}

// Auth returns a middleware that rejects requests lacking a valid bearer
// token. All verification failures are collapsed to one unauthorized
// response; the cause is not exposed to the client.
func Auth(tm *auth.TokenManager, log *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				unauthorized(w)
				return
			}
			userID, err := tm.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				log.Debugf("Token rejected: %v", err)
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "authorization required"})
}

// CORS wraps a handler so the configured frontend origin can call the API
// with credentials and read the Authorization header.
func CORS(origin string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.ExposedHeaders([]string{"Authorization"}),
		handlers.AllowCredentials(),
	)
}
