// Package metrics defines the custom Prometheus metrics for the university
// API. It is the single source of truth for metric names, labels, and help
// strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "university"

// LoginsTotal counts login attempts.
// Labels:
//   - type: "admin", "student", or "unknown" when a failed attempt supplied
//     both identifiers and no single path can be attributed
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by principal type and result.",
	},
	[]string{"type", "result"},
)

// ContactMessagesTotal counts contact form messages persisted.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact form messages stored.",
	},
)

// MailNotificationsTotal counts admin notification email deliveries.
// Label:
//   - result: "ok", "error", or "dropped" when the queue is full
var MailNotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_notifications_total",
		Help:      "Total number of contact notification emails, by delivery result.",
	},
	[]string{"result"},
)
