package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendMailer implements Mailer on the Resend API.
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer builds a mailer from an API key.
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

// Send delivers a single email.
func (m *ResendMailer) Send(ctx context.Context, from, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send to %s: %w", to, err)
	}
	return nil
}
