package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/ports"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Message  string `json:"message" validate:"required"`
}

// Submit handles POST /api/contact. The message is stored before the email
// notification is queued, so a mail outage never loses a submission.
//
// @Summary      Submit a contact form message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  contactRequest  true  "Contact message"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Submit(c.Request().Context(), ports.SubmitContactInput{
		FullName: req.FullName,
		Email:    req.Email,
		Message:  req.Message,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message sent successfully!"})
}
