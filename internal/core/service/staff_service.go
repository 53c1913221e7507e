package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

// StaffService implements staff member management.
type StaffService struct {
	repo ports.StaffRepository
	log  zerolog.Logger
}

func NewStaffService(repo ports.StaffRepository, log zerolog.Logger) *StaffService {
	return &StaffService{repo: repo, log: log}
}

func (s *StaffService) List(ctx context.Context) ([]*domain.Staff, error) {
	return s.repo.List(ctx)
}

func (s *StaffService) Get(ctx context.Context, id string) (*domain.Staff, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StaffService) Create(ctx context.Context, in ports.CreateStaffInput) (*domain.Staff, error) {
	var msgs []string
	if strings.TrimSpace(in.Name) == "" {
		msgs = append(msgs, "name is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		msgs = append(msgs, "title is required")
	}
	if !domain.ValidLinkedinProfile(in.LinkedinProfile) {
		msgs = append(msgs, "linkedinProfile must be a valid LinkedIn URL")
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	member := &domain.Staff{
		Name:            strings.TrimSpace(in.Name),
		Title:           strings.TrimSpace(in.Title),
		Department:      in.Department,
		Email:           strings.TrimSpace(in.Email),
		Phone:           in.Phone,
		ImageURL:        in.ImageURL,
		Description:     in.Description,
		LinkedinProfile: in.LinkedinProfile,
		CreatedAt:       time.Now().UTC(),
	}
	if member.Department == "" {
		member.Department = "General"
	}
	if member.ImageURL == "" {
		member.ImageURL = domain.DefaultStaffImageURL
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	s.log.Info().Str("name", member.Name).Msg("staff member created")
	return member, nil
}

func (s *StaffService) Update(ctx context.Context, id string, in ports.UpdateStaffInput) (*domain.Staff, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		member.Name = strings.TrimSpace(*in.Name)
	}
	if in.Title != nil {
		member.Title = strings.TrimSpace(*in.Title)
	}
	if in.Department != nil {
		member.Department = *in.Department
	}
	if in.Email != nil {
		member.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		member.Phone = *in.Phone
	}
	if in.ImageURL != nil {
		member.ImageURL = *in.ImageURL
	}
	if in.Description != nil {
		member.Description = *in.Description
	}
	if in.LinkedinProfile != nil {
		if !domain.ValidLinkedinProfile(*in.LinkedinProfile) {
			return nil, domain.NewValidationError("linkedinProfile must be a valid LinkedIn URL")
		}
		member.LinkedinProfile = *in.LinkedinProfile
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
