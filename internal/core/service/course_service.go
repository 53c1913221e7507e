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

// CourseService implements course management.
type CourseService struct {
	repo ports.CourseRepository
	log  zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, log: log}
}

func (s *CourseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.repo.List(ctx)
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CourseService) Create(ctx context.Context, in ports.CreateCourseInput) (*domain.Course, error) {
	var missing []string
	if strings.TrimSpace(in.CourseCode) == "" {
		missing = append(missing, "courseCode is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description is required")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	code := strings.TrimSpace(in.CourseCode)
	if _, err := s.repo.FindByCode(ctx, code); err == nil {
		return nil, domain.ErrCourseExists
	} else if !errors.Is(err, domain.ErrCourseNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	course := &domain.Course{
		CourseCode:  code,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		IconName:    in.IconName,
		ImageURL:    in.ImageURL,
		LabelColor:  in.LabelColor,
		Link:        in.Link,
		Highlights:  toHighlights(in.Highlights),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}
	s.log.Info().Str("course_code", course.CourseCode).Msg("course created")
	return course, nil
}

// Update applies a partial merge, re-checking course code uniqueness when the
// code changes to a value held by a different course.
func (s *CourseService) Update(ctx context.Context, id string, in ports.UpdateCourseInput) (*domain.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CourseCode != nil {
		code := strings.TrimSpace(*in.CourseCode)
		if code != course.CourseCode {
			existing, err := s.repo.FindByCode(ctx, code)
			if err == nil && existing.ID != course.ID {
				return nil, domain.ErrCourseExists
			}
			if err != nil && !errors.Is(err, domain.ErrCourseNotFound) {
				return nil, err
			}
		}
		course.CourseCode = code
	}
	if in.Title != nil {
		course.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		course.Description = *in.Description
	}
	if in.IconName != nil {
		course.IconName = *in.IconName
	}
	if in.ImageURL != nil {
		course.ImageURL = *in.ImageURL
	}
	if in.LabelColor != nil {
		course.LabelColor = *in.LabelColor
	}
	if in.Link != nil {
		course.Link = *in.Link
	}
	if in.Highlights != nil {
		course.Highlights = toHighlights(in.Highlights)
	}
	course.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("course_id", id).Msg("course deleted")
	return nil
}

func toHighlights(in []ports.HighlightInput) []domain.CourseHighlight {
	if in == nil {
		return nil
	}
	out := make([]domain.CourseHighlight, len(in))
	for i, h := range in {
		out[i] = domain.CourseHighlight{Title: h.Title, Description: h.Description, IconName: h.IconName}
	}
	return out
}
