package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
	"github.com/sliate-rat/university-api/internal/metrics"
)

const bcryptCost = 10

// AuthService implements the dual-identity login flow and stateless token
// issuance for both principal types.
type AuthService struct {
	users     ports.UserRepository
	students  ports.StudentRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, students ports.StudentRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{users: users, students: students, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login tries the admin path by email, then the student path by registration
// number. A miss on both collapses into ErrInvalidCredentials so callers
// cannot distinguish "not found" from "wrong password".
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (string, *domain.Principal, error) {
	if in.Password == "" || (in.Email == "" && in.RegistrationNumber == "") {
		return "", nil, domain.ErrInvalidCredentials
	}

	if in.Email != "" {
		// Admin emails are stored lowercase (seed and user creation normalize
		// on write), so the lookup key is lowercased too.
		user, err := s.users.FindByEmail(ctx, strings.ToLower(in.Email))
		if err == nil && bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) == nil {
			principal := principalForUser(user)
			token, err := s.generateToken(principal)
			if err != nil {
				return "", nil, err
			}
			metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()
			s.log.Info().Str("user_id", principal.ID).Str("role", principal.Role).Msg("admin login")
			return token, principal, nil
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, err
		}
	}

	if in.RegistrationNumber != "" {
		regNum := strings.ToUpper(in.RegistrationNumber)
		student, err := s.students.FindByRegistrationNumber(ctx, regNum)
		if err == nil && bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(in.Password)) == nil {
			principal := principalForStudent(student)
			token, err := s.generateToken(principal)
			if err != nil {
				return "", nil, err
			}
			metrics.LoginsTotal.WithLabelValues("student", "success").Inc()
			s.log.Info().Str("student_id", principal.ID).Msg("student login")
			return token, principal, nil
		}
		if err != nil && !errors.Is(err, domain.ErrStudentNotFound) {
			return "", nil, err
		}
	}

	metrics.LoginsTotal.WithLabelValues(attemptedLoginType(in), "failure").Inc()
	return "", nil, domain.ErrInvalidCredentials
}

// attemptedLoginType labels a failed login by the identifier supplied. With
// both identifiers present there is no single failed path to attribute.
func attemptedLoginType(in ports.LoginInput) string {
	switch {
	case in.Email != "" && in.RegistrationNumber != "":
		return "unknown"
	case in.Email != "":
		return "admin"
	default:
		return "student"
	}
}

// RegisterStudent creates a student account from a public self-registration
// and returns a token for the new principal.
func (s *AuthService) RegisterStudent(ctx context.Context, in ports.RegisterStudentInput) (string, *domain.Principal, error) {
	student := &domain.Student{
		RegistrationNumber: strings.ToUpper(strings.TrimSpace(in.RegistrationNumber)),
		Name:               strings.TrimSpace(in.Name),
		Email:              strings.TrimSpace(in.Email),
		Department:         strings.ToUpper(strings.TrimSpace(in.Department)),
		Role:               domain.RoleStudent,
		EnrolledSubjects:   []primitive.ObjectID{},
	}
	if verr := domain.ValidateStudentRecord(student); verr != nil {
		return "", nil, verr
	}
	if in.Password == "" {
		return "", nil, domain.NewValidationError("password is required")
	}

	if _, err := s.students.FindByRegistrationNumber(ctx, student.RegistrationNumber); err == nil {
		return "", nil, domain.ErrStudentExists
	} else if !errors.Is(err, domain.ErrStudentNotFound) {
		return "", nil, err
	}
	if student.Email != "" {
		if _, err := s.students.FindByEmail(ctx, student.Email); err == nil {
			return "", nil, domain.ErrStudentExists
		} else if !errors.Is(err, domain.ErrStudentNotFound) {
			return "", nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", nil, err
	}
	student.Password = string(hash)
	student.CreatedAt = time.Now().UTC()

	if err := s.students.Create(ctx, student); err != nil {
		return "", nil, err
	}

	principal := principalForStudent(student)
	token, err := s.generateToken(principal)
	if err != nil {
		return "", nil, err
	}
	s.log.Info().Str("registration_number", student.RegistrationNumber).Msg("student registered")
	return token, principal, nil
}

// Profile re-fetches the full profile for a verified token, dispatching on
// the role claim to pick the collection.
func (s *AuthService) Profile(ctx context.Context, id, role string) (any, error) {
	if role == domain.RoleStudent {
		return s.students.FindByID(ctx, id)
	}
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) generateToken(p *domain.Principal) (string, error) {
	claims := jwt.MapClaims{
		"id":   p.ID,
		"role": p.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	switch p.Role {
	case domain.RoleStudent:
		claims["registrationNumber"] = p.RegistrationNumber
		claims["name"] = p.Name
		claims["email"] = p.Email
		claims["department"] = p.Department
	default:
		claims["username"] = p.Username
		claims["email"] = p.Email
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func principalForUser(u *domain.User) *domain.Principal {
	return &domain.Principal{
		ID:       u.ID.Hex(),
		Role:     u.Role,
		Username: u.Username,
		Email:    u.Email,
	}
}

func principalForStudent(st *domain.Student) *domain.Principal {
	return &domain.Principal{
		ID:                 st.ID.Hex(),
		Role:               domain.RoleStudent,
		RegistrationNumber: st.RegistrationNumber,
		Name:               st.Name,
		Email:              st.Email,
		Department:         st.Department,
	}
}

// HashPassword hashes a plaintext password with the service-wide bcrypt cost.
// Shared with the student management service and the admin seed.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
