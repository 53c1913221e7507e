package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/api/middleware"
	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, in ports.LoginInput) (string, *domain.Principal, error)
	registerFn func(ctx context.Context, in ports.RegisterStudentInput) (string, *domain.Principal, error)
	profileFn  func(ctx context.Context, id, role string) (any, error)
}

func (s *stubAuthService) Login(ctx context.Context, in ports.LoginInput) (string, *domain.Principal, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAuthService) RegisterStudent(ctx context.Context, in ports.RegisterStudentInput) (string, *domain.Principal, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Profile(ctx context.Context, id, role string) (any, error) {
	return s.profileFn(ctx, id, role)
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) (string, *domain.Principal, error) {
			if in.Email != "admin@sliate.ac.lk" || in.Password != "hunter22" {
				t.Errorf("unexpected input: %+v", in)
			}
			return "signed.jwt.token", &domain.Principal{ID: "a1", Role: domain.RoleAdmin, Email: in.Email}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"admin@sliate.ac.lk","password":"hunter22"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("code: got %d", rec.Code)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"message", "token", "user"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing %q key", key)
		}
	}
	if string(body["message"]) != `"Login successful!"` {
		t.Errorf("message: got %s", body["message"])
	}
	if string(body["token"]) != `"signed.jwt.token"` {
		t.Errorf("token: got %s", body["token"])
	}
}

func TestAuthHandler_Login_BadCredentialsPropagated(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) (string, *domain.Principal, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"admin@sliate.ac.lk","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Current(t *testing.T) {
	svc := &stubAuthService{
		profileFn: func(ctx context.Context, id, role string) (any, error) {
			if id != "s1" || role != domain.RoleStudent {
				t.Errorf("unexpected lookup: id=%q role=%q", id, role)
			}
			return &domain.Student{Name: "A. Perera"}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/api/auth", "")
	c.Set(middleware.CtxPrincipalID, "s1")
	c.Set(middleware.CtxPrincipalRole, domain.RoleStudent)

	if err := h.Current(c); err != nil {
		t.Fatalf("current: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code: got %d", rec.Code)
	}
}

func TestAuthHandler_Current_NoPrincipal(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(http.MethodGet, "/api/auth", "")
	err := h.Current(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
