package rbac_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"bistro-boss-server/pkg/middleware"
	"bistro-boss-server/pkg/rbac"
)

// roleTable is a RoleFinder backed by a map; missing emails resolve to "".
type roleTable map[string]string

func (rt roleTable) RoleByEmail(_ context.Context, email string) (string, error) {
	return rt[email], nil
}

func runGate(t *testing.T, store rbac.RoleFinder, claims jwt.MapClaims) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}
	rec := httptest.NewRecorder()
	rbac.RequireAdmin(store)(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	store := roleTable{"boss@x.com": rbac.RoleAdmin}

	rec, reached := runGate(t, store, jwt.MapClaims{"email": "boss@x.com"})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !reached {
		t.Error("admin should pass the gate")
	}
}

func TestRequireAdminRejectsUserRole(t *testing.T) {
	store := roleTable{"user@x.com": rbac.RoleUser}

	rec, reached := runGate(t, store, jwt.MapClaims{"email": "user@x.com"})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if reached {
		t.Error("non-admin must not pass the gate")
	}
}

func TestRequireAdminRejectsUnknownUser(t *testing.T) {
	rec, reached := runGate(t, roleTable{}, jwt.MapClaims{"email": "ghost@x.com"})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if reached {
		t.Error("unknown caller must not pass the gate")
	}
}

func TestRequireAdminRejectsMissingClaims(t *testing.T) {
	rec, reached := runGate(t, roleTable{}, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if reached {
		t.Error("request without claims must not pass the gate")
	}
}
