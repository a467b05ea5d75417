// internal/app/system/auth/auth.go
//
// Package auth authenticates API requests from the Authorization header.
// The middleware verifies the bearer token, loads the user it names, and
// stores the user in the request context for handlers downstream.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/ahlihub/ahlihub/internal/app/system/httpjson"
	"github.com/ahlihub/ahlihub/internal/app/system/timeouts"
	"github.com/ahlihub/ahlihub/internal/app/system/token"
	"github.com/ahlihub/ahlihub/internal/domain/enums"
	"github.com/ahlihub/ahlihub/internal/domain/models"
)

type ctxKey int

const userKey ctxKey = iota

// UserFetcher loads the user a verified token refers to. It is satisfied
// by the users store; tests supply a fake.
type UserFetcher interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Authenticate verifies the bearer token on every request and rejects the
// request with 401 when the token is missing, invalid, expired, or names
// a user that no longer exists or has been deactivated.
func Authenticate(tm *token.Manager, users UserFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				httpjson.Unauthenticated(w, "authentication required")
				return
			}
			userID, err := tm.Verify(raw)
			if err != nil {
				httpjson.Unauthenticated(w, "invalid or expired token")
				return
			}
			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
			user, err := users.GetByID(ctx, userID)
			cancel()
			if err != nil || user == nil || !user.IsActive {
				httpjson.Unauthenticated(w, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
		})
	}
}

// RequireAdmin rejects with 403 unless the authenticated user holds an
// admin role. It must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := CurrentUser(r)
		if !ok {
			httpjson.Unauthenticated(w, "authentication required")
			return
		}
		if !enums.IsAdminRole(user.Role) {
			httpjson.Forbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the authenticated user stored by Authenticate.
func CurrentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	return user, ok
}

// WithTestUser injects a user into the request context so handler tests
// can skip the middleware chain.
func WithTestUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(withUser(r.Context(), user))
}

func withUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
