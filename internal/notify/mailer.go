// SMTP delivery.
//
// SMTPMailer opens an authenticated TLS session to the configured relay per
// message, transmits it, and closes the session. All failures come back as a
// DeliveryError so the dispatch boundary can recognize and contain them.
package notify

import (
	"context"
	"errors"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/advaithaa/realty-backend/internal/config"
)

// DeliveryError wraps any failure between "render finished" and "relay
// accepted the message": missing credentials, dial/auth failure, rejection.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return "mail delivery failed: " + e.Err.Error() }

func (e *DeliveryError) Unwrap() error { return e.Err }

// Mailer sends a rendered message to one recipient.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}

// SMTPMailer is the production Mailer, backed by go-mail.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer returns a Mailer bound to the given relay settings. The
// settings are not validated here; an unconfigured relay surfaces as a
// DeliveryError on the first send, which the dispatcher logs and drops.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send transmits one HTML message. The context bounds the whole dial, auth
// and transmit sequence.
func (m *SMTPMailer) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	if m.cfg.Host == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		return &DeliveryError{Err: errors.New("smtp relay not configured")}
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return &DeliveryError{Err: fmt.Errorf("smtp client: %w", err)}
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return &DeliveryError{Err: fmt.Errorf("from address: %w", err)}
	}
	if err := msg.To(recipient); err != nil {
		return &DeliveryError{Err: fmt.Errorf("recipient address: %w", err)}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}
