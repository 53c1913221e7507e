package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

func TestCalendarService_Items_MergesNewsAndEvents(t *testing.T) {
	news := &stubNewsRepo{
		calendarFn: func(ctx context.Context) ([]*domain.News, error) {
			return []*domain.News{
				{Slug: "exam-results-out", Date: time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)},
			}, nil
		},
	}
	events := &stubEventRepo{
		calendarFn: func(ctx context.Context) ([]*domain.Event, error) {
			return []*domain.Event{
				{Slug: "sports-meet", Date: time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	svc := NewCalendarService(news, events, zerolog.Nop())

	items, err := svc.Items(context.Background())
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].Date != "2025-03-10" || items[0].Slug != "exam-results-out" || items[0].Type != "news" {
		t.Fatalf("unexpected news item: %+v", items[0])
	}
	if items[1].Date != "2025-04-02" || items[1].Slug != "sports-meet" || items[1].Type != "events" {
		t.Fatalf("unexpected event item: %+v", items[1])
	}
}

func TestCalendarService_Items_EmptyCollections(t *testing.T) {
	svc := NewCalendarService(&stubNewsRepo{}, &stubEventRepo{}, zerolog.Nop())

	items, err := svc.Items(context.Background())
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}
}
