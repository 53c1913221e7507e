package ports

import (
	"context"
	"time"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

// Event date filter values.
const (
	FilterUpcoming = "upcoming"
	FilterPast     = "past"
)

// EventListFilter is the resolved repository-level query for events. Today is
// the start of the current day in server-local time; "upcoming" selects
// date >= Today (inclusive), "past" selects date < Today.
type EventListFilter struct {
	Search    string
	Filter    string
	Today     time.Time
	SortField string
	SortDir   int
	Page      int
	Limit     int
}

// EventPage is one page of events plus pagination counts.
type EventPage struct {
	Items       []*domain.Event
	CurrentPage int
	TotalPages  int
	Total       int64
}

// EventRepository defines persistence for events.
type EventRepository interface {
	List(ctx context.Context, filter EventListFilter) ([]*domain.Event, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	CalendarEntries(ctx context.Context) ([]*domain.Event, error)
}

// CreateEventInput carries an event creation.
type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	ImageURL    string
}

// UpdateEventInput carries a partial event update.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	ImageURL    *string
}

// EventService defines event management and the public listing engine.
type EventService interface {
	List(ctx context.Context, q ListQuery) (*EventPage, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, in CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, in UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

// CalendarService merges news and events into the calendar projection.
type CalendarService interface {
	Items(ctx context.Context) ([]domain.CalendarItem, error)
}
