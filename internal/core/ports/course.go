package ports

import (
	"context"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

// CourseRepository defines persistence for courses.
type CourseRepository interface {
	List(ctx context.Context) ([]*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	FindByCode(ctx context.Context, courseCode string) (*domain.Course, error)
	Create(ctx context.Context, c *domain.Course) error
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id string) error
}

// HighlightInput is one ordered highlight sub-record.
type HighlightInput struct {
	Title       string
	Description string
	IconName    string
}

// CreateCourseInput carries a course creation.
type CreateCourseInput struct {
	CourseCode  string
	Title       string
	Description string
	IconName    string
	ImageURL    string
	LabelColor  string
	Link        string
	Highlights  []HighlightInput
}

// UpdateCourseInput carries a partial course update. Highlights, when
// present, replace the stored list wholesale (they are an ordered unit).
type UpdateCourseInput struct {
	CourseCode  *string
	Title       *string
	Description *string
	IconName    *string
	ImageURL    *string
	LabelColor  *string
	Link        *string
	Highlights  []HighlightInput
}

// CourseService defines course management operations.
type CourseService interface {
	List(ctx context.Context) ([]*domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, in CreateCourseInput) (*domain.Course, error)
	Update(ctx context.Context, id string, in UpdateCourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}
