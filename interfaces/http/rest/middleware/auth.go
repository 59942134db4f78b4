package middleware

import (
	"context"
	"net/http"

	"storefront-backend/application/ports"
	"storefront-backend/domain"
	pkgerrors "storefront-backend/pkg/errors"
)

type contextKey string

const userContextKey contextKey = "authenticated-user"

// AdminOnly gates a route group to admin accounts. The caller identifies
// itself with an `id` query parameter, which is resolved against the user
// store on every request.
func AdminOnly(users ports.UserRepository, errs *pkgerrors.ErrorHandler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.URL.Query().Get("id")
			if id == "" {
				errs.Handle(w, r, pkgerrors.NewUnauthorizedError("please log in first"))
				return
			}

			user, err := users.ByID(r.Context(), id)
			if err != nil {
				if pkgerrors.IsNotFound(err) {
					errs.Handle(w, r, pkgerrors.NewUnauthorizedError("invalid id"))
					return
				}
				errs.Handle(w, r, err)
				return
			}

			if !user.IsAdmin() {
				errs.Handle(w, r, pkgerrors.NewForbiddenError("admin access required"))
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the account resolved by AdminOnly, if any.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}
