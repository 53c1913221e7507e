package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	var key interface{} = []byte(secret)
	tok := jwt.NewWithClaims(method, claims)
	signed, err := tok.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func invokeAuth(token string) (error, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	if token != "" {
		req.Header.Set(HeaderAuthToken, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return h(c), c
}

func TestAuth_MissingToken(t *testing.T) {
	err, _ := invokeAuth("")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("code: got %d, want 401", httpErr.Code)
	}
	if httpErr.Message != "no token, authorization denied" {
		t.Errorf("message: got %v", httpErr.Message)
	}
}

func TestAuth_ValidTokenSetsPrincipal(t *testing.T) {
	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "64a0c0ffee0123456789abcd",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	err, c := invokeAuth(token)
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if got, _ := c.Get(CtxPrincipalID).(string); got != "64a0c0ffee0123456789abcd" {
		t.Errorf("principal id: got %q", got)
	}
	if got, _ := c.Get(CtxPrincipalRole).(string); got != "admin" {
		t.Errorf("principal role: got %q", got)
	}
}

func TestAuth_RejectsInvalidTokens(t *testing.T) {
	expired := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"id": "x", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.SigningMethodHS256, jwt.MapClaims{
		"id": "x", "role": "admin",
	})
	noRole := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"id": "x",
	})

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"expired", expired},
		{"wrong key", wrongKey},
		{"missing role claim", noRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err, _ := invokeAuth(tc.token)
			if !errors.Is(err, domain.ErrTokenInvalid) {
				t.Fatalf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestAuth_RejectsUnexpectedAlg(t *testing.T) {
	// HS384 signed with the right secret must still be rejected.
	token := signToken(t, testSecret, jwt.SigningMethodHS384, jwt.MapClaims{
		"id": "x", "role": "admin",
	})

	err, _ := invokeAuth(token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
