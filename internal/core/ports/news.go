package ports

import (
	"context"
	"time"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

// ListQuery carries the raw query axes of a news/events list request.
// Sort is the client-supplied "field:direction" pair; Filter applies to
// events only ("upcoming", "past" or empty for all).
type ListQuery struct {
	Search string
	Filter string
	Sort   string
	Page   int
	Limit  int
}

// NewsListFilter is the resolved repository-level query: sort defaults
// applied, page normalized to 1-based.
type NewsListFilter struct {
	Search    string
	SortField string
	SortDir   int // 1 ascending, -1 descending
	Page      int
	Limit     int
}

// NewsPage is one page of news plus the counts the caller needs to render
// page controls without a second round trip.
type NewsPage struct {
	Items       []*domain.News
	CurrentPage int
	TotalPages  int
	Total       int64
}

// NewsRepository defines persistence for news articles.
type NewsRepository interface {
	// List runs a count and a find for the filter, returning the page slice
	// and the total matching count.
	List(ctx context.Context, filter NewsListFilter) ([]*domain.News, int64, error)
	FindByID(ctx context.Context, id string) (*domain.News, error)
	Create(ctx context.Context, n *domain.News) error
	Update(ctx context.Context, n *domain.News) error
	Delete(ctx context.Context, id string) error
	// CalendarEntries returns the date/slug projection of every article.
	CalendarEntries(ctx context.Context) ([]*domain.News, error)
}

// CreateNewsInput carries a news creation. A zero Date defaults to now.
type CreateNewsInput struct {
	Title    string
	Content  string
	Date     time.Time
	ImageURL string
}

// UpdateNewsInput carries a partial news update.
type UpdateNewsInput struct {
	Title    *string
	Content  *string
	Date     *time.Time
	ImageURL *string
}

// NewsService defines news management and the public listing engine.
type NewsService interface {
	List(ctx context.Context, q ListQuery) (*NewsPage, error)
	Get(ctx context.Context, id string) (*domain.News, error)
	Create(ctx context.Context, in CreateNewsInput) (*domain.News, error)
	Update(ctx context.Context, id string, in UpdateNewsInput) (*domain.News, error)
	Delete(ctx context.Context, id string) error
}
