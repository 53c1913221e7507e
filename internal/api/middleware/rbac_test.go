package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func invokeRequireRole(role string, allowed ...string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/news", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(CtxPrincipalRole, role)
	}

	h := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return h(c)
}

func TestRequireRole_AllowedRolePasses(t *testing.T) {
	if err := invokeRequireRole("admin", "admin"); err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if err := invokeRequireRole("student", "admin", "student"); err != nil {
		t.Fatalf("expected pass-through for multi-role list, got %v", err)
	}
}

func TestRequireRole_WrongRoleForbidden(t *testing.T) {
	err := invokeRequireRole("student", "admin")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Errorf("code: got %d, want 403", httpErr.Code)
	}
}

func TestRequireRole_MissingRoleUnauthorized(t *testing.T) {
	// No role in context means Auth never ran.
	err := invokeRequireRole("", "admin")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("code: got %d, want 401", httpErr.Code)
	}
}
