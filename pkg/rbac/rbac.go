// Package rbac provides role-based access control middleware.
//
// The role is looked up from the user store on every request rather than
// trusted from the token: the token payload is caller-supplied, so only the
// stored user record is authoritative.
package rbac

import (
	"context"
	"net/http"

	"bistro-boss-server/pkg/logger"
	"bistro-boss-server/pkg/middleware"
	"bistro-boss-server/pkg/response"
)

// RoleAdmin and RoleUser are the only roles the site knows.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// RoleFinder resolves the stored role for an email address.
// Implementations return ("", nil) when no user record exists.
type RoleFinder interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireAdmin returns middleware that allows the request through only when
// the authenticated caller's stored role is "admin". Requires RequireToken
// to have already run (the email claim must be in context). A missing user
// record, a missing email claim, and a non-admin role all yield 403.
func RequireAdmin(store RoleFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := middleware.EmailFromCtx(r.Context())
			if !ok {
				response.Forbidden(w)
				return
			}

			role, err := store.RoleByEmail(r.Context(), email)
			if err != nil {
				logger.WithCtx(r.Context()).Error("role lookup failed", "email", email, "error", err)
				response.InternalError(w)
				return
			}
			if role != RoleAdmin {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
