package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/models"
	"gopkg.in/gomail.v2"
)

// dialAndSender is the part of *gomail.Dialer used by the SMTP mailer.
type dialAndSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	from   string
	dialer dialAndSender
	logger *logger.Logger
}

// NewSMTPMailer returns a [Mailer] that opens one SMTP session per message.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) Mailer {
	return &smtpMailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger: log,
	}
}

func (m *smtpMailer) Send(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email.To) == "" {
		return ErrEmptyRecipient
	}
	// gomail has no context support; do not start a session for a request
	// that is already gone.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Message)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Err(err).Str("func", "*smtpMailer.Send").Msg("smtp delivery failed")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	log.Info().Str("func", "*smtpMailer.Send").Str("to", email.To).Msg("email sent")
	return nil
}
