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

func TestStaffService_Create_Defaults(t *testing.T) {
	var created *domain.Staff
	repo := &stubStaffRepo{
		createFn: func(ctx context.Context, st *domain.Staff) error {
			created = st
			return nil
		},
	}
	svc := NewStaffService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateStaffInput{
		Name:  "  Dr. A. Perera  ",
		Title: "Senior Lecturer",
		Email: "perera@sliate.ac.lk",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Dr. A. Perera" {
		t.Errorf("name not trimmed: %q", created.Name)
	}
	if created.Department != "General" {
		t.Errorf("department default: got %q, want General", created.Department)
	}
	if created.ImageURL != domain.DefaultStaffImageURL {
		t.Errorf("imageUrl default: got %q", created.ImageURL)
	}
}

func TestStaffService_Create_KeepsExplicitValues(t *testing.T) {
	var created *domain.Staff
	repo := &stubStaffRepo{
		createFn: func(ctx context.Context, st *domain.Staff) error {
			created = st
			return nil
		},
	}
	svc := NewStaffService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateStaffInput{
		Name:       "B. Silva",
		Title:      "Demonstrator",
		Department: "HNDIT",
		ImageURL:   "https://example.com/silva.jpg",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Department != "HNDIT" {
		t.Errorf("department overwritten: %q", created.Department)
	}
	if created.ImageURL != "https://example.com/silva.jpg" {
		t.Errorf("imageUrl overwritten: %q", created.ImageURL)
	}
}

func TestStaffService_Create_InvalidLinkedin(t *testing.T) {
	svc := NewStaffService(&stubStaffRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateStaffInput{
		Name:            "B. Silva",
		Title:           "Demonstrator",
		LinkedinProfile: "https://twitter.com/silva",
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestStaffService_Create_MissingFieldsAggregated(t *testing.T) {
	svc := NewStaffService(&stubStaffRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateStaffInput{})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Messages) != 2 {
		t.Fatalf("expected name and title failures, got %v", verr.Messages)
	}
}

func TestStaffService_Update_LinkedinValidated(t *testing.T) {
	stored := &domain.Staff{ID: primitive.NewObjectID(), Name: "B. Silva", Title: "Demonstrator"}
	repo := &stubStaffRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Staff, error) {
			cp := *stored
			return &cp, nil
		},
	}
	svc := NewStaffService(repo, zerolog.Nop())

	bad := "not-a-linkedin-url"
	_, err := svc.Update(context.Background(), stored.ID.Hex(), ports.UpdateStaffInput{LinkedinProfile: &bad})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	good := "https://www.linkedin.com/in/bsilva"
	updated, err := svc.Update(context.Background(), stored.ID.Hex(), ports.UpdateStaffInput{LinkedinProfile: &good})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LinkedinProfile != good {
		t.Errorf("linkedinProfile not applied: %q", updated.LinkedinProfile)
	}
}

func TestStaffService_Delete_NotFound(t *testing.T) {
	svc := NewStaffService(&stubStaffRepo{}, zerolog.Nop())
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrStaffNotFound) {
		t.Fatalf("expected ErrStaffNotFound, got %v", err)
	}
}
