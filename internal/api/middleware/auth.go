package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/rohits-web03/ideaforge/internal/repositories"
	"github.com/rohits-web03/ideaforge/internal/utils"
	"go.uber.org/zap"
)

type contextKey string

const userKey contextKey = "user"

// TokenDecoder resolves a bearer credential to the username it was issued for.
type TokenDecoder interface {
	DecodeToken(token string) (username string, ok bool)
}

// UserLookup finds the account behind a decoded username.
type UserLookup interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the resolved user in the request context.
func AuthMiddleware(tokens TokenDecoder, users UserLookup, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				utils.Error(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			parts := strings.Fields(header)
			if len(parts) != 2 {
				utils.Error(w, http.StatusUnauthorized, "Invalid token format")
				return
			}
			if !strings.EqualFold(parts[0], "bearer") {
				utils.Error(w, http.StatusUnauthorized, "Invalid authentication scheme")
				return
			}

			username, ok := tokens.DecodeToken(parts[1])
			if !ok {
				utils.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			user, err := users.GetByUsername(r.Context(), username)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					utils.Error(w, http.StatusNotFound, "User not found")
					return
				}
				log.Errorw("user lookup failed", "username", username, "err", err)
				utils.Error(w, http.StatusInternalServerError, "Error resolving user: "+err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a copy of ctx carrying user as the acting identity.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}
