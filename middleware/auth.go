package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"smartbank-go/models"
	"smartbank-go/store"
	"smartbank-go/utils"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth builds the bearer-token guard for protected routes. It parses the
// Authorization header, verifies the token and loads the user record so
// handlers get the current database state, not just token claims.
func Auth(tokens *utils.TokenService, st *store.Store) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header missing")
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w, "Invalid authorization header")
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				log.Printf("Token verification failed for %s: %v", r.URL.Path, err)
				unauthorized(w, "Invalid or expired token")
				return
			}

			user, err := st.FindUserByID(userID)
			if err != nil {
				log.Printf("Token subject %s has no user record", userID)
				unauthorized(w, "User not found")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user set by Auth, or nil.
func UserFromContext(r *http.Request) *models.User {
	if user, ok := r.Context().Value(userContextKey).(*models.User); ok {
		return user
	}
	return nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
