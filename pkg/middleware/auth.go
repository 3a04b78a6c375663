package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"bistro-boss-server/pkg/auth"
	"bistro-boss-server/pkg/logger"
	"bistro-boss-server/pkg/response"
)

// claimsKey is the unexported context key for the decoded token claims.
type claimsKey struct{}

// ClaimsFromCtx returns the token claims attached by RequireToken.
func ClaimsFromCtx(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(jwt.MapClaims)
	return claims, ok
}

// EmailFromCtx returns the email claim attached by RequireToken.
func EmailFromCtx(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromCtx(ctx)
	if !ok {
		return "", false
	}
	email, ok := claims["email"].(string)
	return email, ok && email != ""
}

// WithClaims stores claims in ctx. Exported for tests that exercise
// handlers behind the gate without going through RequireToken.
func WithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// RequireToken returns middleware that rejects requests without a valid
// bearer token. A missing Authorization header, a malformed token and an
// expired token all produce the same 401 body; callers are never told which.
// On success the decoded claims are attached to the request context.
func RequireToken(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Unauthorized(w)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			claims, err := svc.Verify(token)
			if err != nil {
				logger.WithCtx(r.Context()).Debug("token rejected", "reason", err)
				response.Unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
