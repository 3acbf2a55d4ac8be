package adapter

import (
	"fmt"

	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/logger"
)

// NewMailer selects the [Mailer] implementation named by cfg.Mail.Driver.
func NewMailer(cfg config.Adapter, log *logger.Logger) (Mailer, error) {
	switch cfg.Mail.Driver {
	case config.MailDriverSMTP:
		return NewSMTPMailer(cfg.Mail, log), nil
	case config.MailDriverHTTP:
		return NewHTTPMailer(cfg.Mail, cfg.RequestTimeout, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMailDriver, cfg.Mail.Driver)
	}
}
