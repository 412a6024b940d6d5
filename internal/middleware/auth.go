package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pintag-dev/pintag/internal/domain"
	internal_errors "github.com/pintag-dev/pintag/internal/errors"
	"github.com/pintag-dev/pintag/internal/utils"
)

// IdentityHeader carries the caller's claimed username. There is no proof of
// possession: anyone who knows a registered name can act as that user. This
// is the reproduced contract, not a security boundary; swapping in a real
// auth mechanism only requires replacing this middleware.
const IdentityHeader = "X-User-Name"

// UserDirectory resolves a claimed name to a registered user.
type UserDirectory interface {
	UserByName(name string) (domain.User, bool)
}

// Key to store the resolved user in the request context
type key int

const userKey key = 0

type Identity struct {
	users UserDirectory
}

func NewIdentity(users UserDirectory) *Identity {
	return &Identity{users: users}
}

// Required returns middleware that rejects requests whose identity header is
// missing, blank, or names an unknown user.
func (i *Identity) Required() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := r.Header.Get(IdentityHeader)
			if strings.TrimSpace(name) == "" {
				unauthenticated(w)
				return
			}

			user, ok := i.users.UserByName(name)
			if !ok {
				unauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthenticated(w http.ResponseWriter) {
	utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{
		Message:    "Invalid or missing X-User-Name header.",
		StatusCode: http.StatusUnauthorized,
	})
}

// GetUserFromContext retrieves the resolved user from the request context.
// Returns nil when the request did not pass through Required.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// WithUser returns a copy of the request carrying the given user in its
// context. Test helper for exercising handlers without the middleware.
func WithUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, user))
}
