package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/ports"
)

// CalendarHandler serves the merged news/events calendar projection.
type CalendarHandler struct {
	service ports.CalendarService
}

func NewCalendarHandler(service ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// Items handles GET /api/calendar-items.
//
// @Summary      List calendar items
// @Description  Flat list of dated news and events for the site calendar.
// @Tags         calendar
// @Produce      json
// @Success      200  {array}  domain.CalendarItem
// @Router       /api/calendar-items [get]
func (h *CalendarHandler) Items(c echo.Context) error {
	items, err := h.service.Items(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
