package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sliate-rat/university-api/internal/core/ports"
	"github.com/sliate-rat/university-api/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Mailer delivers a single contact notification.
type Mailer interface {
	SendContactNotification(n ports.ContactNotification) error
}

// MailDispatcher delivers contact notifications through a fixed worker pool,
// keeping the SMTP round trip off the request path. Delivery is best effort:
// the submission itself is already persisted by the time a notification is
// enqueued.
type MailDispatcher struct {
	ch      chan ports.ContactNotification
	workers int
	mailer  Mailer
	log     zerolog.Logger
}

// NewMailDispatcher creates a MailDispatcher with numWorkers delivery workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, mailer Mailer, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &MailDispatcher{
		ch:      make(chan ports.ContactNotification, channelBuffer),
		workers: numWorkers,
		mailer:  mailer,
		log:     log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Enqueue hands a notification to the pool without blocking. When the buffer
// is full the notification is dropped and counted; the stored message remains
// the source of truth.
func (d *MailDispatcher) Enqueue(n ports.ContactNotification) {
	select {
	case d.ch <- n:
	default:
		metrics.MailNotificationsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("email", n.Email).Msg("mail queue full, notification dropped")
	}
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.ch:
			if !ok {
				return
			}
			if err := d.mailer.SendContactNotification(n); err != nil {
				metrics.MailNotificationsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("email", n.Email).
					Int("worker_id", id).
					Msg("contact notification delivery failed")
				continue
			}
			metrics.MailNotificationsTotal.WithLabelValues("ok").Inc()
		}
	}
}
