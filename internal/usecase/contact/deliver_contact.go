package contact

import (
	"context"
	"fmt"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type contactDelivererSrv struct {
	mailer port.Mailer
	from   string
	to     []string
}

var _ port.ContactDeliverer = (*contactDelivererSrv)(nil)

// NewContactDeliverer sends contact messages from the from address to the
// site owner addresses in to. Replies go to the visitor.
func NewContactDeliverer(mailer port.Mailer, from string, to []string) port.ContactDeliverer {
	return &contactDelivererSrv{mailer: mailer, from: from, to: to}
}

func (s *contactDelivererSrv) DeliverContact(ctx context.Context, msg model.ContactMessage) error {
	subject, text, body := contactEmailTemplate(msg)
	err := s.mailer.Send(ctx, port.Email{
		From:    s.from,
		To:      s.to,
		ReplyTo: msg.Email,
		Subject: subject,
		Text:    text,
		HTML:    body,
	})
	if err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}
