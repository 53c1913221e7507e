package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

// Listing defaults shared by news and events. The page size matches the
// public site's card grid.
const (
	defaultPageLimit = 3
	sortAscending    = 1
	sortDescending   = -1
)

// parseSort splits a client-supplied "field:direction" pair. ok is false when
// the pair is malformed, letting the caller apply its policy default.
func parseSort(sort string) (field string, dir int, ok bool) {
	parts := strings.SplitN(sort, ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, false
	}
	switch parts[1] {
	case "1":
		return parts[0], sortAscending, true
	case "-1":
		return parts[0], sortDescending, true
	}
	return "", 0, false
}

func normalizePage(q ports.ListQuery) (page, limit int) {
	page, limit = q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

// NewsService implements news management and the public listing engine.
type NewsService struct {
	repo ports.NewsRepository
	log  zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, log zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, log: log}
}

// List resolves the query axes and runs a count plus a find. News defaults to
// newest first when the sort pair is malformed or absent.
func (s *NewsService) List(ctx context.Context, q ports.ListQuery) (*ports.NewsPage, error) {
	page, limit := normalizePage(q)

	field, dir, ok := parseSort(q.Sort)
	if !ok {
		field, dir = "date", sortDescending
	}

	items, total, err := s.repo.List(ctx, ports.NewsListFilter{
		Search:    q.Search,
		SortField: field,
		SortDir:   dir,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.NewsPage{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		Total:       total,
	}, nil
}

func (s *NewsService) Get(ctx context.Context, id string) (*domain.News, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NewsService) Create(ctx context.Context, in ports.CreateNewsInput) (*domain.News, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Content) == "" {
		return nil, domain.NewValidationError("title and content are required")
	}

	now := time.Now().UTC()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	article := &domain.News{
		Title:     title,
		Content:   in.Content,
		Date:      date,
		ImageURL:  in.ImageURL,
		Slug:      domain.DeriveSlug(title),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	s.log.Info().Str("slug", article.Slug).Msg("news article created")
	return article, nil
}

// Update applies a partial merge. The slug is recomputed only when the
// incoming title differs from the stored one.
func (s *NewsService) Update(ctx context.Context, id string, in ports.UpdateNewsInput) (*domain.News, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.NewValidationError("title cannot be empty")
		}
		if title != article.Title {
			article.Title = title
			article.Slug = domain.DeriveSlug(title)
		}
	}
	if in.Content != nil {
		article.Content = *in.Content
	}
	if in.Date != nil {
		article.Date = *in.Date
	}
	if in.ImageURL != nil {
		article.ImageURL = *in.ImageURL
	}
	article.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
