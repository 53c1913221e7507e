package ports

import (
	"context"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

// UserRepository defines persistence for institutional accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

// LoginInput carries the credentials of a login attempt. Email selects the
// admin path, RegistrationNumber the student path; either may be empty.
type LoginInput struct {
	Email              string
	RegistrationNumber string
	Password           string
}

// RegisterStudentInput carries a student self-registration.
type RegisterStudentInput struct {
	RegistrationNumber string
	Name               string
	Email              string
	Password           string
	Department         string
}

// AuthService implements the dual-identity authentication flow: issue and
// refresh nothing, just stateless HS256 tokens with a 1 hour TTL.
type AuthService interface {
	// Login tries the admin path by email first, then the student path by
	// registration number. Both misses collapse into ErrInvalidCredentials.
	Login(ctx context.Context, in LoginInput) (string, *domain.Principal, error)
	// RegisterStudent creates a student account and returns a token for it.
	RegisterStudent(ctx context.Context, in RegisterStudentInput) (string, *domain.Principal, error)
	// Profile re-fetches the full profile (password excluded) for the id in a
	// verified token, using role to decide which collection to query. The
	// result is a *domain.User or *domain.Student.
	Profile(ctx context.Context, id, role string) (any, error)
}
