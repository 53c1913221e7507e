package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/ports"
)

// StudentAuthHandler serves the legacy student-scoped auth endpoints, kept as
// a parallel path to the unified /api/auth for older frontend builds.
type StudentAuthHandler struct {
	auth ports.AuthService
}

func NewStudentAuthHandler(auth ports.AuthService) *StudentAuthHandler {
	return &StudentAuthHandler{auth: auth}
}

type registerStudentRequest struct {
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
	Name               string `json:"name" validate:"required,max=100"`
	Email              string `json:"email" validate:"omitempty,email"`
	Password           string `json:"password" validate:"required,min=6"`
	Department         string `json:"department" validate:"required"`
}

type studentLoginRequest struct {
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
	Password           string `json:"password" validate:"required"`
}

// Register creates a student account via public self-registration.
//
// @Summary      Register a student
// @Tags         student-auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerStudentRequest  true  "Student details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/student-auth/register [post]
func (h *StudentAuthHandler) Register(c echo.Context) error {
	var req registerStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, principal, err := h.auth.RegisterStudent(c.Request().Context(), ports.RegisterStudentInput{
		RegistrationNumber: req.RegistrationNumber,
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		Department:         req.Department,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Message: "Student registered successfully!",
		Token:   token,
		User:    principal,
	})
}

// Login authenticates a student by registration number.
//
// @Summary      Student login
// @Tags         student-auth
// @Accept       json
// @Produce      json
// @Param        body  body      studentLoginRequest  true  "Student credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/student-auth/login [post]
func (h *StudentAuthHandler) Login(c echo.Context) error {
	var req studentLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, principal, err := h.auth.Login(c.Request().Context(), ports.LoginInput{
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

// Current returns the authenticated student's profile.
//
// @Summary      Get the current student
// @Tags         student-auth
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Success      200  {object}  domain.Student
// @Failure      401  {object}  map[string]string
// @Router       /api/student-auth [get]
func (h *StudentAuthHandler) Current(c echo.Context) error {
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
