package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/ports"
)

// StaffHandler serves the staff directory endpoints.
type StaffHandler struct {
	service ports.StaffService
}

func NewStaffHandler(service ports.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

type createStaffRequest struct {
	Name            string `json:"name" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Department      string `json:"department"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	ImageURL        string `json:"imageURL"`
	Description     string `json:"description"`
	LinkedinProfile string `json:"linkedinProfile"`
}

type updateStaffRequest struct {
	Name            *string `json:"name"`
	Title           *string `json:"title"`
	Department      *string `json:"department"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	ImageURL        *string `json:"imageURL"`
	Description     *string `json:"description"`
	LinkedinProfile *string `json:"linkedinProfile"`
}

// List handles GET /api/staff.
//
// @Summary      List staff members
// @Tags         staff
// @Produce      json
// @Success      200  {array}  domain.Staff
// @Router       /api/staff [get]
func (h *StaffHandler) List(c echo.Context) error {
	staff, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, staff)
}

// Get handles GET /api/staff/:id.
//
// @Summary      Get a staff member by id
// @Tags         staff
// @Produce      json
// @Param        id   path      string  true  "Staff id"
// @Success      200  {object}  domain.Staff
// @Failure      404  {object}  map[string]string
// @Router       /api/staff/{id} [get]
func (h *StaffHandler) Get(c echo.Context) error {
	member, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Create handles POST /api/staff (admin only).
//
// @Summary      Create a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string              true  "JWT"
// @Param        body          body    createStaffRequest  true  "Staff details"
// @Success      201  {object}  domain.Staff
// @Failure      400  {object}  map[string]string
// @Router       /api/staff [post]
func (h *StaffHandler) Create(c echo.Context) error {
	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.Create(c.Request().Context(), ports.CreateStaffInput{
		Name:            req.Name,
		Title:           req.Title,
		Department:      req.Department,
		Email:           req.Email,
		Phone:           req.Phone,
		ImageURL:        req.ImageURL,
		Description:     req.Description,
		LinkedinProfile: req.LinkedinProfile,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, member)
}

// Update handles PUT /api/staff/:id (admin only).
//
// @Summary      Update a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string              true  "JWT"
// @Param        id            path    string              true  "Staff id"
// @Param        body          body    updateStaffRequest  true  "Fields to update"
// @Success      200  {object}  domain.Staff
// @Failure      404  {object}  map[string]string
// @Router       /api/staff/{id} [put]
func (h *StaffHandler) Update(c echo.Context) error {
	var req updateStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	member, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateStaffInput{
		Name:            req.Name,
		Title:           req.Title,
		Department:      req.Department,
		Email:           req.Email,
		Phone:           req.Phone,
		ImageURL:        req.ImageURL,
		Description:     req.Description,
		LinkedinProfile: req.LinkedinProfile,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Delete handles DELETE /api/staff/:id (admin only).
//
// @Summary      Delete a staff member
// @Tags         staff
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Param        id            path    string  true  "Staff id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/staff/{id} [delete]
func (h *StaffHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Staff member removed"})
}
