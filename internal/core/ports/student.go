package ports

import (
	"context"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

// StudentRepository defines persistence for student accounts.
type StudentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	FindByRegistrationNumber(ctx context.Context, regNum string) (*domain.Student, error)
	FindByEmail(ctx context.Context, email string) (*domain.Student, error)
	// List returns all students sorted by registration number.
	List(ctx context.Context) ([]*domain.Student, error)
	Create(ctx context.Context, s *domain.Student) error
	Update(ctx context.Context, s *domain.Student) error
	Delete(ctx context.Context, id string) error
}

// CreateStudentInput carries an admin-side student creation.
type CreateStudentInput struct {
	RegistrationNumber string
	Name               string
	Email              string
	Password           string
	Department         string
	EnrolledSubjects   []string
}

// UpdateStudentInput carries a partial student update. Nil fields are left
// unchanged; an omitted password preserves the stored hash.
type UpdateStudentInput struct {
	RegistrationNumber *string
	Name               *string
	Email              *string
	Password           *string
	Department         *string
	EnrolledSubjects   []string
}

// StudentService defines student management operations. Read views populate
// enrolled subjects with the denormalized name/code/department subset.
type StudentService interface {
	List(ctx context.Context) ([]*domain.StudentProfile, error)
	Get(ctx context.Context, id string) (*domain.StudentProfile, error)
	Create(ctx context.Context, in CreateStudentInput) (*domain.Student, error)
	Update(ctx context.Context, id string, in UpdateStudentInput) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}
