package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

// SubjectService implements subject management. Codes and departments are
// stored uppercase.
type SubjectService struct {
	repo ports.SubjectRepository
	log  zerolog.Logger
}

func NewSubjectService(repo ports.SubjectRepository, log zerolog.Logger) *SubjectService {
	return &SubjectService{repo: repo, log: log}
}

func (s *SubjectService) List(ctx context.Context, department string) ([]*domain.Subject, error) {
	return s.repo.List(ctx, strings.ToUpper(strings.TrimSpace(department)))
}

func (s *SubjectService) Get(ctx context.Context, id string) (*domain.Subject, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SubjectService) Create(ctx context.Context, in ports.CreateSubjectInput) (*domain.Subject, error) {
	name := strings.TrimSpace(in.Name)
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	department := strings.ToUpper(strings.TrimSpace(in.Department))

	var msgs []string
	if name == "" {
		msgs = append(msgs, "name is required")
	}
	if code == "" {
		msgs = append(msgs, "code is required")
	}
	if !domain.ValidDepartment(department) {
		msgs = append(msgs, "department must be one of HNDE, HNDA, HNDIT")
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	if _, err := s.repo.FindByCode(ctx, code); err == nil {
		return nil, domain.ErrSubjectExists
	} else if !errors.Is(err, domain.ErrSubjectNotFound) {
		return nil, err
	}

	subject := &domain.Subject{
		Name:        name,
		Code:        code,
		Department:  department,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, subject); err != nil {
		return nil, err
	}
	s.log.Info().Str("code", subject.Code).Str("department", subject.Department).Msg("subject created")
	return subject, nil
}

// Update applies a partial merge, re-checking code uniqueness when the code
// changes to one held by a different subject.
func (s *SubjectService) Update(ctx context.Context, id string, in ports.UpdateSubjectInput) (*domain.Subject, error) {
	subject, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*in.Code))
		if code != subject.Code {
			existing, err := s.repo.FindByCode(ctx, code)
			if err == nil && existing.ID != subject.ID {
				return nil, domain.ErrSubjectExists
			}
			if err != nil && !errors.Is(err, domain.ErrSubjectNotFound) {
				return nil, err
			}
		}
		subject.Code = code
	}
	if in.Name != nil {
		subject.Name = strings.TrimSpace(*in.Name)
	}
	if in.Department != nil {
		department := strings.ToUpper(strings.TrimSpace(*in.Department))
		if !domain.ValidDepartment(department) {
			return nil, domain.NewValidationError("department must be one of HNDE, HNDA, HNDIT")
		}
		subject.Department = department
	}
	if in.Description != nil {
		subject.Description = *in.Description
	}

	if err := s.repo.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
