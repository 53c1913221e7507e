package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

// EventService implements event management and the public listing engine.
type EventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

func NewEventService(repo ports.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, log: log, now: time.Now}
}

// startOfToday is the upcoming/past boundary: midnight of the current day in
// server-local time. An event dated exactly today counts as upcoming.
func (s *EventService) startOfToday() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// List resolves the query axes and runs a count plus a find. The sort default
// depends on the date filter: oldest first, except past events which read
// more naturally newest first.
func (s *EventService) List(ctx context.Context, q ports.ListQuery) (*ports.EventPage, error) {
	page, limit := normalizePage(q)

	filter := q.Filter
	if filter != ports.FilterUpcoming && filter != ports.FilterPast {
		filter = ""
	}

	field, dir, ok := parseSort(q.Sort)
	if !ok {
		field = "date"
		if filter == ports.FilterPast {
			dir = sortDescending
		} else {
			dir = sortAscending
		}
	}

	items, total, err := s.repo.List(ctx, ports.EventListFilter{
		Search:    q.Search,
		Filter:    filter,
		Today:     s.startOfToday(),
		SortField: field,
		SortDir:   dir,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.EventPage{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		Total:       total,
	}, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	title := strings.TrimSpace(in.Title)
	var missing []string
	if title == "" {
		missing = append(missing, "title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description is required")
	}
	if in.Date.IsZero() {
		missing = append(missing, "date is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		missing = append(missing, "location is required")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		Title:       title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
		Slug:        domain.DeriveSlug(title),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	s.log.Info().Str("slug", event.Slug).Time("date", event.Date).Msg("event created")
	return event, nil
}

// Update applies a partial merge, recomputing the slug only on title change.
func (s *EventService) Update(ctx context.Context, id string, in ports.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.NewValidationError("title cannot be empty")
		}
		if title != event.Title {
			event.Title = title
			event.Slug = domain.DeriveSlug(title)
		}
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Date != nil {
		event.Date = *in.Date
	}
	if in.Location != nil {
		event.Location = *in.Location
	}
	if in.ImageURL != nil {
		event.ImageURL = *in.ImageURL
	}
	event.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
