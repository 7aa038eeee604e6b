package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/YarenOpuz/smart-stock/internal/user/domain"
	"github.com/YarenOpuz/smart-stock/pkg/auth"
	"github.com/YarenOpuz/smart-stock/pkg/logger"
)

type contextKey string

const userContextKey contextKey = "current_user"

// Middleware wraps a handler with another
type Middleware func(http.HandlerFunc) http.HandlerFunc

// AuthMiddleware validates the bearer token and resolves it to an active user
func AuthMiddleware(repo domain.UserRepository) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Logger.Warn().Msg("Missing authorization header")
				respondAuthError(w, "Authorization header required")
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Logger.Warn().Msg("Invalid authorization header format")
				respondAuthError(w, "Invalid authorization header format")
				return
			}

			claims, err := auth.ValidateToken(parts[1])
			if err != nil {
				logger.Logger.Warn().Err(err).Msg("Invalid token")
				respondAuthError(w, "Invalid or expired token")
				return
			}

			user, err := repo.FindByEmail(claims.Subject)
			if err != nil {
				logger.Logger.Warn().Str("email", claims.Subject).Msg("Token subject does not resolve to a user")
				respondAuthError(w, "Could not validate credentials")
				return
			}

			if !user.IsActive {
				logger.Logger.Warn().Uint("user_id", user.ID).Msg("Inactive user rejected")
				respondAuthError(w, "Inactive user")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// CurrentUser returns the authenticated user stored in the request context
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}

func respondAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
