// Package auth issues and verifies the signed access tokens used by the
// Bistro Boss API.
//
// A token is an HS256 JWT over whatever JSON object the caller of
// POST /user/authToken submitted, valid for one hour. The payload is
// caller-controlled; the server adds only exp and iat. Known gap:
// issuance performs no identity verification.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity window of every issued token.
const TokenTTL = time.Hour

var (
	// ErrInvalidToken covers malformed tokens and signature mismatches.
	ErrInvalidToken = errors.New("auth: invalid token")
	// ErrExpiredToken is returned when the token's validity window has passed.
	ErrExpiredToken = errors.New("auth: token expired")
)

// Service signs and verifies tokens with a shared secret.
type Service struct {
	secret []byte
	now    func() time.Time
}

// NewService returns a Service signing with secret.
func NewService(secret []byte) *Service {
	return &Service{secret: secret, now: time.Now}
}

// Issue signs claims and returns the compact token string.
// The claims map is embedded verbatim; exp and iat are set by the server.
func (s *Service) Issue(claims map[string]any) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}

	now := s.now()
	mc["iat"] = jwt.NewNumericDate(now)
	mc["exp"] = jwt.NewNumericDate(now.Add(TokenTTL))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
}

// Verify validates signature and expiry and returns the decoded claims.
// Callers must treat ErrInvalidToken and ErrExpiredToken identically at the
// HTTP boundary (both are a 401); the split exists for logging only.
func (s *Service) Verify(token string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
