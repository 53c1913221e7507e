package ports

import (
	"context"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

// SubjectRepository defines persistence for subjects.
type SubjectRepository interface {
	// List returns subjects sorted by name, optionally filtered by department.
	List(ctx context.Context, department string) ([]*domain.Subject, error)
	FindByID(ctx context.Context, id string) (*domain.Subject, error)
	// FindByIDs returns the subjects matching ids; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Subject, error)
	FindByCode(ctx context.Context, code string) (*domain.Subject, error)
	Create(ctx context.Context, s *domain.Subject) error
	Update(ctx context.Context, s *domain.Subject) error
	Delete(ctx context.Context, id string) error
}

// CreateSubjectInput carries a subject creation.
type CreateSubjectInput struct {
	Name        string
	Code        string
	Department  string
	Description string
}

// UpdateSubjectInput carries a partial subject update.
type UpdateSubjectInput struct {
	Name        *string
	Code        *string
	Department  *string
	Description *string
}

// SubjectService defines subject management operations.
type SubjectService interface {
	List(ctx context.Context, department string) ([]*domain.Subject, error)
	Get(ctx context.Context, id string) (*domain.Subject, error)
	Create(ctx context.Context, in CreateSubjectInput) (*domain.Subject, error)
	Update(ctx context.Context, id string, in UpdateSubjectInput) (*domain.Subject, error)
	Delete(ctx context.Context, id string) error
}
