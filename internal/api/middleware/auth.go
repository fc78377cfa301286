package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/pkg/response"
	"github.com/matcare/pregnancy-backend/internal/repository"
)

type userIDKey struct{}

// TokenVerifier validates an access token and returns the user ID.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// Auth validates the bearer token on every request and resolves the
// user behind it. Resolved users are cached briefly so a burst of
// requests does not hit the database per call; a deactivated account
// may therefore stay valid until the cache entry expires.
func Auth(tokens TokenVerifier, users repository.UserRepository, ttl time.Duration) func(next http.Handler) http.Handler {
	cache := gocache.New(ttl, 2*ttl)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				ctxzap.Warn(ctx, "token verification failed", zap.Error(err))
				response.Error(w, http.StatusUnauthorized, entity.ErrInvalidToken.Error())
				return
			}

			if _, found := cache.Get(userID); !found {
				user, err := users.GetUserByID(ctx, userID)
				if err != nil {
					ctxzap.Warn(ctx, "token user not found", zap.Error(err))
					response.Error(w, http.StatusUnauthorized, entity.ErrInvalidToken.Error())
					return
				}
				cache.SetDefault(userID, user)
			}

			ctx = context.WithValue(ctx, userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user ID set by Auth. The empty
// string means the request skipped the auth middleware.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}
