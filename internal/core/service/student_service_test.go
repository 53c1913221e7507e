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

func TestStudentService_Create_NormalizesAndHashes(t *testing.T) {
	var created *domain.Student
	students := &stubStudentRepo{
		createFn: func(ctx context.Context, st *domain.Student) error {
			created = st
			return nil
		},
	}
	svc := NewStudentService(students, &stubSubjectRepo{}, zerolog.Nop())

	subjectID := primitive.NewObjectID()
	_, err := svc.Create(context.Background(), ports.CreateStudentInput{
		RegistrationNumber: " rat/en/2023/f/0012 ",
		Name:               "Sunil Fernando",
		Email:              "sunil@example.com",
		Password:           "secret123",
		Department:         "hnde",
		EnrolledSubjects:   []string{subjectID.Hex()},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.RegistrationNumber != "RAT/EN/2023/F/0012" || created.Department != domain.DeptHNDE {
		t.Fatalf("inputs not normalized: %+v", created)
	}
	if created.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if len(created.EnrolledSubjects) != 1 || created.EnrolledSubjects[0] != subjectID {
		t.Fatalf("subject ids not parsed: %+v", created.EnrolledSubjects)
	}
}

func TestStudentService_Create_RejectsMalformedSubjectID(t *testing.T) {
	svc := NewStudentService(&stubStudentRepo{}, &stubSubjectRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateStudentInput{
		RegistrationNumber: "RAT/IT/2022/A/0001",
		Name:               "Test",
		Password:           "secret123",
		Department:         domain.DeptHNDIT,
		EnrolledSubjects:   []string{"not-an-object-id"},
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestStudentService_Update_OmittedPasswordPreservesHash(t *testing.T) {
	stored := &domain.Student{
		ID:                 primitive.NewObjectID(),
		RegistrationNumber: "RAT/IT/2022/A/0001",
		Name:               "Before",
		Department:         domain.DeptHNDIT,
		Password:           "stored-hash",
	}
	var updated *domain.Student
	students := &stubStudentRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Student, error) {
			cp := *stored
			return &cp, nil
		},
		updateFn: func(ctx context.Context, st *domain.Student) error {
			updated = st
			return nil
		},
	}
	svc := NewStudentService(students, &stubSubjectRepo{}, zerolog.Nop())

	name := "After"
	if _, err := svc.Update(context.Background(), stored.ID.Hex(), ports.UpdateStudentInput{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Password != "stored-hash" {
		t.Fatalf("password hash not preserved: %q", updated.Password)
	}
	if updated.Name != "After" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
}

func TestStudentService_Update_RegNumConflict(t *testing.T) {
	me := primitive.NewObjectID()
	other := primitive.NewObjectID()
	students := &stubStudentRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Student, error) {
			return &domain.Student{
				ID:                 me,
				RegistrationNumber: "RAT/IT/2022/A/0001",
				Name:               "Me",
				Department:         domain.DeptHNDIT,
			}, nil
		},
		findByRegNumFn: func(ctx context.Context, regNum string) (*domain.Student, error) {
			return &domain.Student{ID: other, RegistrationNumber: regNum}, nil
		},
	}
	svc := NewStudentService(students, &stubSubjectRepo{}, zerolog.Nop())

	taken := "RAT/IT/2022/A/0002"
	_, err := svc.Update(context.Background(), me.Hex(), ports.UpdateStudentInput{RegistrationNumber: &taken})
	if !errors.Is(err, domain.ErrStudentExists) {
		t.Fatalf("expected ErrStudentExists, got %v", err)
	}
}

func TestStudentService_Get_PopulatesEnrolledSubjects(t *testing.T) {
	subjectID := primitive.NewObjectID()
	staleID := primitive.NewObjectID()
	students := &stubStudentRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Student, error) {
			return &domain.Student{
				ID:                 primitive.NewObjectID(),
				RegistrationNumber: "RAT/IT/2022/A/0001",
				Department:         domain.DeptHNDIT,
				EnrolledSubjects:   []primitive.ObjectID{subjectID, staleID},
			}, nil
		},
	}
	subjects := &stubSubjectRepo{
		findByIDsFn: func(ctx context.Context, ids []string) ([]*domain.Subject, error) {
			return []*domain.Subject{
				{ID: subjectID, Name: "Web Development", Code: "HNDIT2025", Department: domain.DeptHNDIT},
			}, nil
		},
	}
	svc := NewStudentService(students, subjects, zerolog.Nop())

	profile, err := svc.Get(context.Background(), "x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// The stale reference is skipped, not an error.
	if len(profile.EnrolledSubjects) != 1 {
		t.Fatalf("expected 1 populated subject, got %d", len(profile.EnrolledSubjects))
	}
	ref := profile.EnrolledSubjects[0]
	if ref.Name != "Web Development" || ref.Code != "HNDIT2025" || ref.Department != domain.DeptHNDIT {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestStudentService_Delete_NotFound(t *testing.T) {
	svc := NewStudentService(&stubStudentRepo{}, &stubSubjectRepo{}, zerolog.Nop())
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
