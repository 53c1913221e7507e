package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

// NewsHandler serves the news CRUD and public listing endpoints.
type NewsHandler struct {
	service ports.NewsService
}

func NewNewsHandler(service ports.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

type createNewsRequest struct {
	Title    string     `json:"title" validate:"required"`
	Content  string     `json:"content" validate:"required"`
	Date     *time.Time `json:"date"`
	ImageURL string     `json:"imageURL"`
}

type updateNewsRequest struct {
	Title    *string    `json:"title"`
	Content  *string    `json:"content"`
	Date     *time.Time `json:"date"`
	ImageURL *string    `json:"imageURL"`
}

// newsListResponse is the pagination envelope the public site's pager renders
// from without a second round trip.
type newsListResponse struct {
	News        []*domain.News `json:"news"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalNews   int64          `json:"totalNews"`
}

// listQuery parses the shared page/limit/search/sort(/filter) query axes.
func listQuery(c echo.Context) ports.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.ListQuery{
		Search: c.QueryParam("search"),
		Filter: c.QueryParam("filter"),
		Sort:   c.QueryParam("sort"),
		Page:   page,
		Limit:  limit,
	}
}

// List handles GET /api/news with pagination, search, and sort.
//
// @Summary      List news articles
// @Tags         news
// @Produce      json
// @Param        page    query  int     false  "1-based page number"
// @Param        limit   query  int     false  "Page size (default 3)"
// @Param        search  query  string  false  "Case-insensitive match on title or content"
// @Param        sort    query  string  false  "field:direction, direction 1 or -1"
// @Success      200  {object}  newsListResponse
// @Router       /api/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newsListResponse{
		News:        page.Items,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalNews:   page.Total,
	})
}

// Get handles GET /api/news/:id.
//
// @Summary      Get a news article by id
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "News id"
// @Success      200  {object}  domain.News
// @Failure      404  {object}  map[string]string
// @Router       /api/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	article, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Create handles POST /api/news (admin only).
//
// @Summary      Create a news article
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string             true  "JWT"
// @Param        body          body    createNewsRequest  true  "Article details"
// @Success      201  {object}  domain.News
// @Failure      400  {object}  map[string]string
// @Router       /api/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	var req createNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.CreateNewsInput{Title: req.Title, Content: req.Content, ImageURL: req.ImageURL}
	if req.Date != nil {
		in.Date = *req.Date
	}
	article, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, article)
}

// Update handles PUT /api/news/:id (admin only).
//
// @Summary      Update a news article
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string             true  "JWT"
// @Param        id            path    string             true  "News id"
// @Param        body          body    updateNewsRequest  true  "Fields to update"
// @Success      200  {object}  domain.News
// @Failure      404  {object}  map[string]string
// @Router       /api/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	var req updateNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	article, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateNewsInput{
		Title:    req.Title,
		Content:  req.Content,
		Date:     req.Date,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /api/news/:id (admin only).
//
// @Summary      Delete a news article
// @Tags         news
// @Produce      json
// @Param        x-auth-token  header  string  true  "JWT"
// @Param        id            path    string  true  "News id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "News article removed"})
}
