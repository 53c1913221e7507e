package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

// AuthHandler serves the unified login endpoint used by both admins and
// students, plus the "who am I" profile lookup.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email              string `json:"email"`
	RegistrationNumber string `json:"registrationNumber"`
	Password           string `json:"password"`
}

type authResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    *domain.Principal `json:"user"`
}

// Login authenticates an admin (by email) or a student (by registration
// number) and returns a bearer token.
//
// @Summary      Login as admin or student
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, principal, err := h.auth.Login(c.Request().Context(), ports.LoginInput{
		Email:              req.Email,
		RegistrationNumber: req.RegistrationNumber,
		Password:           req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful!",
		Token:   token,
		User:    principal,
	})
}

// Current returns the full profile of the authenticated principal, password
// excluded, re-fetched by the id and role carried in the token.
//
// @Summary      Get the current principal's profile
// @Tags         auth
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/auth [get]
func (h *AuthHandler) Current(c echo.Context) error {
	id, role, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	profile, err := h.auth.Profile(c.Request().Context(), id, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
