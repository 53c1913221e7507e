package mail

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sliate-rat/university-api/internal/core/ports"
)

// Config holds the SMTP settings for admin notification mail.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	AdminTo   string
}

// SMTPMailer delivers contact-form notifications to the admin mailbox over
// plain SMTP. With empty credentials it logs the notification instead of
// sending, so local development needs no mail server.
type SMTPMailer struct {
	cfg Config
	log zerolog.Logger
}

func NewSMTPMailer(cfg Config, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

func (m *SMTPMailer) SendContactNotification(n ports.ContactNotification) error {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		m.log.Warn().
			Str("from", n.Email).
			Str("fullName", n.FullName).
			Msg("SMTP credentials not configured, contact notification logged only")
		return nil
	}

	subject := fmt.Sprintf("New contact form message from %s", n.FullName)
	body := fmt.Sprintf(
		"Name: %s\r\nEmail: %s\r\n\r\n%s\r\n",
		n.FullName, n.Email, n.Message,
	)
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		m.cfg.FromEmail, m.cfg.AdminTo, n.Email, subject, body,
	)

	addr := m.cfg.Host + ":" + strconv.Itoa(m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{m.cfg.AdminTo}, []byte(message)); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}
