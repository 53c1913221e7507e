package ports

import (
	"context"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

// StaffRepository defines persistence for staff members.
type StaffRepository interface {
	// List returns all staff sorted by name.
	List(ctx context.Context) ([]*domain.Staff, error)
	FindByID(ctx context.Context, id string) (*domain.Staff, error)
	Create(ctx context.Context, s *domain.Staff) error
	Update(ctx context.Context, s *domain.Staff) error
	Delete(ctx context.Context, id string) error
}

// CreateStaffInput carries a staff member creation.
type CreateStaffInput struct {
	Name            string
	Title           string
	Department      string
	Email           string
	Phone           string
	ImageURL        string
	Description     string
	LinkedinProfile string
}

// UpdateStaffInput carries a partial staff update.
type UpdateStaffInput struct {
	Name            *string
	Title           *string
	Department      *string
	Email           *string
	Phone           *string
	ImageURL        *string
	Description     *string
	LinkedinProfile *string
}

// StaffService defines staff management operations.
type StaffService interface {
	List(ctx context.Context) ([]*domain.Staff, error)
	Get(ctx context.Context, id string) (*domain.Staff, error)
	Create(ctx context.Context, in CreateStaffInput) (*domain.Staff, error)
	Update(ctx context.Context, id string, in UpdateStaffInput) (*domain.Staff, error)
	Delete(ctx context.Context, id string) error
}
