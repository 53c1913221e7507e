package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

const calendarDateLayout = "2006-01-02"

// CalendarService merges news and events into the date/slug/type projection
// consumed by the public calendar widget.
type CalendarService struct {
	news   ports.NewsRepository
	events ports.EventRepository
	log    zerolog.Logger
}

func NewCalendarService(news ports.NewsRepository, events ports.EventRepository, log zerolog.Logger) *CalendarService {
	return &CalendarService{news: news, events: events, log: log}
}

func (s *CalendarService) Items(ctx context.Context) ([]domain.CalendarItem, error) {
	articles, err := s.news.CalendarEntries(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.events.CalendarEntries(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.CalendarItem, 0, len(articles)+len(events))
	for _, n := range articles {
		items = append(items, domain.CalendarItem{
			Date: n.Date.Format(calendarDateLayout),
			Slug: n.Slug,
			Type: "news",
		})
	}
	for _, e := range events {
		items = append(items, domain.CalendarItem{
			Date: e.Date.Format(calendarDateLayout),
			Slug: e.Slug,
			Type: "events",
		})
	}
	return items, nil
}
