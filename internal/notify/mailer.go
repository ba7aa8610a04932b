package notify

import (
	"context"
	"log"

	"github.com/mailgun/mailgun-go/v4"
)

// Mailer is an interface for sending emails. Any type that implements it
// can back the dispatcher, which keeps the HTTP layer testable without a
// mail provider.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// MailgunMailer sends mail through the Mailgun API.
type MailgunMailer struct {
	mg     *mailgun.MailgunImpl
	sender string
}

func NewMailgunMailer(domain, apiKey, sender string) *MailgunMailer {
	return &MailgunMailer{
		mg:     mailgun.NewMailgun(domain, apiKey),
		sender: sender,
	}
}

func (m *MailgunMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := m.mg.NewMessage(m.sender, subject, body, to)
	_, _, err := m.mg.Send(ctx, msg)
	return err
}

// LogMailer writes mail to the process log instead of sending it.
// Used in development and tests when mail is disabled.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to, subject, _ string) error {
	log.Printf("mail (disabled): to=%s subject=%q", to, subject)
	return nil
}
