package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/ports"
)

// SubjectHandler serves the subject catalog endpoints.
type SubjectHandler struct {
	service ports.SubjectService
}

func NewSubjectHandler(service ports.SubjectService) *SubjectHandler {
	return &SubjectHandler{service: service}
}

type createSubjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Description string `json:"description"`
}

type updateSubjectRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Department  *string `json:"department"`
	Description *string `json:"description"`
}

// List handles GET /api/subjects, optionally filtered by ?department.
//
// @Summary      List subjects
// @Tags         subjects
// @Produce      json
// @Param        department  query  string  false  "Filter by department (HNDE, HNDA, HNDIT)"
// @Success      200  {array}  domain.Subject
// @Router       /api/subjects [get]
func (h *SubjectHandler) List(c echo.Context) error {
	subjects, err := h.service.List(c.Request().Context(), c.QueryParam("department"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subjects)
}

// Get handles GET /api/subjects/:id.
//
// @Summary      Get a subject by id
// @Tags         subjects
// @Produce      json
// @Param        id   path      string  true  "Subject id"
// @Success      200  {object}  domain.Subject
// @Failure      404  {object}  map[string]string
// @Router       /api/subjects/{id} [get]
func (h *SubjectHandler) Get(c echo.Context) error {
	subject, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subject)
}

// Create handles POST /api/subjects (admin only).
//
// @Summary      Create a subject
// @Tags         subjects
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string                true  "JWT"
// @Param        body          body    createSubjectRequest  true  "Subject details"
// @Success      201  {object}  domain.Subject
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/subjects [post]
func (h *SubjectHandler) Create(c echo.Context) error {
	var req createSubjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	subject, err := h.service.Create(c.Request().Context(), ports.CreateSubjectInput{
		Name:        req.Name,
		Code:        req.Code,
		Department:  req.Department,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, subject)
}

// Update handles PUT /api/subjects/:id (admin only).
//
// @Summary      Update a subject
// @Tags         subjects
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string                true  "JWT"
// @Param        id            path    string                true  "Subject id"
// @Param        body          body    updateSubjectRequest  true  "Fields to update"
// @Success      200  {object}  domain.Subject
// @Failure      404  {object}  map[string]string
// @Router       /api/subjects/{id} [put]
func (h *SubjectHandler) Update(c echo.Context) error {
	var req updateSubjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	subject, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateSubjectInput{
		Name:        req.Name,
		Code:        req.Code,
		Department:  req.Department,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subject)
}

// Delete handles DELETE /api/subjects/:id (admin only).
//
// @Summary      Delete a subject
// @Tags         subjects
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Param        id            path    string  true  "Subject id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/subjects/{id} [delete]
func (h *SubjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Subject removed"})
}
