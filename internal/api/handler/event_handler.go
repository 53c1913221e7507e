package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

// EventHandler serves the events CRUD and public listing endpoints.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

type createEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Location    string     `json:"location"`
	ImageURL    string     `json:"imageURL"`
}

type updateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	ImageURL    *string    `json:"imageURL"`
}

type eventListResponse struct {
	Events      []*domain.Event `json:"events"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	TotalEvents int64           `json:"totalEvents"`
}

// List handles GET /api/events with pagination, search, sort and date filter.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        page    query  int     false  "1-based page number"
// @Param        limit   query  int     false  "Page size (default 3)"
// @Param        search  query  string  false  "Case-insensitive match on title, description or location"
// @Param        sort    query  string  false  "field:direction, direction 1 or -1"
// @Param        filter  query  string  false  "upcoming or past"
// @Success      200  {object}  eventListResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventListResponse{
		Events:      page.Items,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalEvents: page.Total,
	})
}

// Get handles GET /api/events/:id.
//
// @Summary      Get an event by id
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  map[string]string
// @Router       /api/events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Create handles POST /api/events (admin only). Field presence is checked in
// the service so every missing field is reported in one response.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string              true  "JWT"
// @Param        body          body    createEventRequest  true  "Event details"
// @Success      201  {object}  domain.Event
// @Failure      400  {object}  map[string]string
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	}
	if req.Date != nil {
		in.Date = *req.Date
	}
	event, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Update handles PUT /api/events/:id (admin only).
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string              true  "JWT"
// @Param        id            path    string              true  "Event id"
// @Param        body          body    updateEventRequest  true  "Fields to update"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  map[string]string
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	event, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /api/events/:id (admin only).
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Param        id            path    string  true  "Event id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Event removed"})
}
