package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/ports"
)

// CourseHandler serves the course CRUD endpoints. Reads are public; writes
// require an authenticated principal.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

type highlightRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	IconName    string `json:"iconName"`
}

type createCourseRequest struct {
	CourseCode  string             `json:"courseCode" validate:"required"`
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description" validate:"required"`
	IconName    string             `json:"iconName"`
	ImageURL    string             `json:"imageURL"`
	LabelColor  string             `json:"labelColor"`
	Link        string             `json:"link"`
	Highlights  []highlightRequest `json:"highlights" validate:"omitempty,dive"`
}

type updateCourseRequest struct {
	CourseCode  *string            `json:"courseCode"`
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	IconName    *string            `json:"iconName"`
	ImageURL    *string            `json:"imageURL"`
	LabelColor  *string            `json:"labelColor"`
	Link        *string            `json:"link"`
	Highlights  []highlightRequest `json:"highlights"`
}

// List handles GET /api/courses.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}  domain.Course
// @Router       /api/courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// Get handles GET /api/courses/:id.
//
// @Summary      Get a course by id
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  domain.Course
// @Failure      404  {object}  map[string]string
// @Router       /api/courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Create handles POST /api/courses.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string               true  "JWT"
// @Param        body          body    createCourseRequest  true  "Course details"
// @Success      201  {object}  domain.Course
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.service.Create(c.Request().Context(), ports.CreateCourseInput{
		CourseCode:  req.CourseCode,
		Title:       req.Title,
		Description: req.Description,
		IconName:    req.IconName,
		ImageURL:    req.ImageURL,
		LabelColor:  req.LabelColor,
		Link:        req.Link,
		Highlights:  toHighlightInputs(req.Highlights),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, course)
}

// Update handles PUT /api/courses/:id with a partial field merge.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string               true  "JWT"
// @Param        id            path    string               true  "Course id"
// @Param        body          body    updateCourseRequest  true  "Fields to update"
// @Success      200  {object}  domain.Course
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	course, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCourseInput{
		CourseCode:  req.CourseCode,
		Title:       req.Title,
		Description: req.Description,
		IconName:    req.IconName,
		ImageURL:    req.ImageURL,
		LabelColor:  req.LabelColor,
		Link:        req.Link,
		Highlights:  toHighlightInputs(req.Highlights),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Delete handles DELETE /api/courses/:id.
//
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Param        id            path    string  true  "Course id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Course removed"})
}

func toHighlightInputs(in []highlightRequest) []ports.HighlightInput {
	if in == nil {
		return nil
	}
	out := make([]ports.HighlightInput, len(in))
	for i, hl := range in {
		out[i] = ports.HighlightInput{Title: hl.Title, Description: hl.Description, IconName: hl.IconName}
	}
	return out
}
