package ports

import (
	"context"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

// ContactRepository defines persistence for contact form messages.
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
}

// ContactNotification is the admin email queued after a message is stored.
type ContactNotification struct {
	FullName string
	Email    string
	Message  string
}

// ContactNotifier hands a notification to the async delivery pipeline.
// Enqueue must not block on the SMTP round trip.
type ContactNotifier interface {
	Enqueue(n ContactNotification)
}

// SubmitContactInput carries a public contact form submission.
type SubmitContactInput struct {
	FullName string
	Email    string
	Message  string
}

// ContactService persists contact messages and triggers notifications.
type ContactService interface {
	Submit(ctx context.Context, in SubmitContactInput) error
}
