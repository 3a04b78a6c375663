package controllers

import (
	"net/http"

	"bistro-boss-server/pkg/auth"
	"bistro-boss-server/pkg/bind"
	"bistro-boss-server/pkg/logger"
	"bistro-boss-server/pkg/response"
)

// AuthController issues access tokens.
type AuthController struct {
	tokens *auth.Service
}

func NewAuthController(tokens *auth.Service) *AuthController {
	return &AuthController{tokens: tokens}
}

// IssueToken signs whatever JSON object the caller posts and returns the
// token. The frontend sends its user record here after login; the server
// performs no identity verification of its own (known gap, kept for
// behavioral parity with the live site).
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := bind.JSON(r, &payload); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	token, err := c.tokens.Issue(payload)
	if err != nil {
		logger.WithCtx(r.Context()).Error("token issuance failed", "error", err)
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}
