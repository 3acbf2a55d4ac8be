package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/models"
)

// relayMessage is the JSON body posted to the mail relay.
type relayMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type httpMailer struct {
	client   *utils.HTTPClient
	relayURL string
	from     string
	logger   *logger.Logger
}

// NewHTTPMailer returns a [Mailer] that hands messages to a JSON mail relay
// at cfg.RelayURL, authenticating with cfg.RelayToken as a bearer token.
func NewHTTPMailer(cfg config.Mail, timeout time.Duration, log *logger.Logger) Mailer {
	client := utils.NewHTTPClient("", timeout).WithBearerToken(cfg.RelayToken)

	return &httpMailer{
		client:   client,
		relayURL: cfg.RelayURL,
		from:     cfg.From,
		logger:   log,
	}
}

func (m *httpMailer) Send(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email.To) == "" {
		return ErrEmptyRecipient
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(relayMessage{
			From:    m.from,
			To:      email.To,
			Subject: email.Subject,
			Text:    email.Message,
		}).
		Post(m.relayURL)
	if err != nil {
		log.Err(err).Str("func", "*httpMailer.Send").Msg("mail relay request failed")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}
	if err = relayError(resp); err != nil {
		log.Err(err).Str("func", "*httpMailer.Send").Int("status", resp.StatusCode()).Msg("mail relay rejected message")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	log.Info().Str("func", "*httpMailer.Send").Str("to", email.To).Msg("email handed to relay")
	return nil
}
