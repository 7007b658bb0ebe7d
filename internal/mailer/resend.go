package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

var ErrNotConfigured = errors.New("mailer not configured (missing RESEND_API_KEY)")

type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type ResendMailer struct {
	emails emailSender
	isDev  bool
}

// compile-time check: *ResendMailer must satisfy port.Mailer
var _ port.Mailer = (*ResendMailer)(nil)

// NewResendMailer builds a mailer backed by Resend. In dev mode emails are
// only logged.
func NewResendMailer(apiKey string, isDev bool) *ResendMailer {
	log.Println("initialising resend mailer...")
	m := &ResendMailer{isDev: isDev}
	if apiKey != "" && !isDev {
		m.emails = resend.NewClient(apiKey).Emails
	}
	return m
}

func (m *ResendMailer) Send(ctx context.Context, e port.Email) error {
	if m.isDev {
		logger.Info(ctx, "email sent (dev mode)", "to", e.To, "subject", e.Subject, "reply_to", e.ReplyTo)
		return nil
	}
	if m.emails == nil {
		return ErrNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    e.From,
		To:      e.To,
		ReplyTo: e.ReplyTo,
		Subject: e.Subject,
		Text:    e.Text,
		Html:    e.HTML,
	}
	sent, err := m.emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	logger.Info(ctx, "email sent", "to", e.To, "id", sent.Id)
	return nil
}
