package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/ports"
)

// StudentHandler serves the admin-side student records endpoints plus the
// student self-service profile.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

type createStudentRequest struct {
	RegistrationNumber string   `json:"registrationNumber" validate:"required"`
	Name               string   `json:"name" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required,min=6"`
	Department         string   `json:"department" validate:"required"`
	EnrolledSubjects   []string `json:"enrolledSubjects"`
}

type updateStudentRequest struct {
	RegistrationNumber *string  `json:"registrationNumber"`
	Name               *string  `json:"name"`
	Email              *string  `json:"email"`
	Password           *string  `json:"password"`
	Department         *string  `json:"department"`
	EnrolledSubjects   []string `json:"enrolledSubjects"`
}

// List handles GET /api/students (admin only).
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Success      200  {array}  domain.StudentProfile
// @Router       /api/students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

// Get handles GET /api/students/:id (admin only).
//
// @Summary      Get a student by id
// @Tags         students
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Param        id            path    string  true  "Student id"
// @Success      200  {object}  domain.StudentProfile
// @Failure      404  {object}  map[string]string
// @Router       /api/students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Me handles GET /api/students/me. The id always comes from the verified
// token, never from the request.
//
// @Summary      Get the authenticated student's profile
// @Tags         students
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Success      200  {object}  domain.StudentProfile
// @Failure      401  {object}  map[string]string
// @Router       /api/students/me [get]
func (h *StudentHandler) Me(c echo.Context) error {
	id, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	student, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Create handles POST /api/students (admin only).
//
// @Summary      Create a student record
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string                true  "JWT"
// @Param        body          body    createStudentRequest  true  "Student details"
// @Success      201  {object}  domain.Student
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.service.Create(c.Request().Context(), ports.CreateStudentInput{
		RegistrationNumber: req.RegistrationNumber,
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		Department:         req.Department,
		EnrolledSubjects:   req.EnrolledSubjects,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, student)
}

// Update handles PUT /api/students/:id (admin only).
//
// @Summary      Update a student record
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string                true  "JWT"
// @Param        id            path    string                true  "Student id"
// @Param        body          body    updateStudentRequest  true  "Fields to update"
// @Success      200  {object}  domain.Student
// @Failure      404  {object}  map[string]string
// @Router       /api/students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	student, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateStudentInput{
		RegistrationNumber: req.RegistrationNumber,
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		Department:         req.Department,
		EnrolledSubjects:   req.EnrolledSubjects,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Delete handles DELETE /api/students/:id (admin only).
//
// @Summary      Delete a student record
// @Tags         students
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Param        id            path    string  true  "Student id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Student removed"})
}
