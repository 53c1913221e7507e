package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

func TestCourseService_Create(t *testing.T) {
	var created *domain.Course
	repo := &stubCourseRepo{
		createFn: func(ctx context.Context, c *domain.Course) error {
			created = c
			return nil
		},
	}
	svc := NewCourseService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCourseInput{
		CourseCode:  "HNDIT",
		Title:       "Higher National Diploma in IT",
		Description: "Two year full time programme",
		Highlights: []ports.HighlightInput{
			{Title: "Industry placement", Description: "Six months", IconName: "briefcase"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.Highlights) != 1 || created.Highlights[0].Title != "Industry placement" {
		t.Fatalf("highlights not mapped: %+v", created.Highlights)
	}
}

func TestCourseService_Create_MissingFields(t *testing.T) {
	svc := NewCourseService(&stubCourseRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCourseInput{CourseCode: "X"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCourseService_Create_DuplicateCode(t *testing.T) {
	repo := &stubCourseRepo{
		findByCodeFn: func(ctx context.Context, code string) (*domain.Course, error) {
			return &domain.Course{CourseCode: code}, nil
		},
	}
	svc := NewCourseService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCourseInput{
		CourseCode:  "HNDIT",
		Title:       "HND in IT",
		Description: "desc",
	})
	if !errors.Is(err, domain.ErrCourseExists) {
		t.Fatalf("expected ErrCourseExists, got %v", err)
	}
}

func TestCourseService_Update_HighlightsReplacedWholesale(t *testing.T) {
	stored := &domain.Course{
		ID:         primitive.NewObjectID(),
		CourseCode: "HNDIT",
		Title:      "HND in IT",
		Highlights: []domain.CourseHighlight{
			{Title: "Old one"}, {Title: "Old two"},
		},
	}
	var updated *domain.Course
	repo := &stubCourseRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Course, error) {
			cp := *stored
			return &cp, nil
		},
		updateFn: func(ctx context.Context, c *domain.Course) error {
			updated = c
			return nil
		},
	}
	svc := NewCourseService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), stored.ID.Hex(), ports.UpdateCourseInput{
		Highlights: []ports.HighlightInput{{Title: "Only new"}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Highlights) != 1 || updated.Highlights[0].Title != "Only new" {
		t.Fatalf("highlights not replaced: %+v", updated.Highlights)
	}
}

func TestCourseService_Delete_NotFound(t *testing.T) {
	svc := NewCourseService(&stubCourseRepo{}, zerolog.Nop())
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
