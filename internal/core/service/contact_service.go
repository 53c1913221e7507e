package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
	"github.com/sliate-rat/university-api/internal/metrics"
)

// NotificationDeduper suppresses repeat admin notifications for identical
// submissions (Redis-backed with a TTL).
type NotificationDeduper interface {
	IsDuplicate(ctx context.Context, email, message string) (bool, error)
	Mark(ctx context.Context, email, message string) error
}

// ContactService persists contact form messages and enqueues the admin
// notification email off the request path. The stored message is the
// durability guarantee; notification delivery is best effort.
type ContactService struct {
	repo     ports.ContactRepository
	notifier ports.ContactNotifier
	dedup    NotificationDeduper
	log      zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, notifier ports.ContactNotifier, dedup NotificationDeduper, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, notifier: notifier, dedup: dedup, log: log}
}

func (s *ContactService) Submit(ctx context.Context, in ports.SubmitContactInput) error {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)
	if fullName == "" || email == "" || message == "" {
		return domain.NewValidationError("fullName, email and message are required")
	}

	if err := s.repo.Create(ctx, &domain.ContactMessage{
		FullName:  fullName,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return err
	}
	metrics.ContactMessagesTotal.Inc()

	// The message is stored; a dedup failure must not turn into a 500.
	isDup, err := s.dedup.IsDuplicate(ctx, email, message)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("contact dedup check failed, notifying anyway")
	} else if isDup {
		s.log.Debug().Str("email", email).Msg("duplicate contact submission, notification skipped")
		return nil
	}
	if err := s.dedup.Mark(ctx, email, message); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to set contact dedup key")
	}

	s.notifier.Enqueue(ports.ContactNotification{FullName: fullName, Email: email, Message: message})
	return nil
}
