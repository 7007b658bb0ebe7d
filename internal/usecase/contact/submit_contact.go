package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/validation"
)

var ErrInvalidContact = errors.New("invalid contact form")

type contactSenderSrv struct {
	tasks port.TaskDispatcher
	now   func() time.Time
}

var _ port.ContactSender = (*contactSenderSrv)(nil)

func NewContactSender(tasks port.TaskDispatcher) port.ContactSender {
	return &contactSenderSrv{tasks: tasks, now: time.Now}
}

func (s *contactSenderSrv) SubmitContact(ctx context.Context, in port.ContactInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	if err := validation.ValidateStruct(in); err != nil {
		return errors.Join(ErrInvalidContact, err)
	}

	msg := model.ContactMessage{
		Name:       in.Name,
		Email:      in.Email,
		Subject:    in.Subject,
		Message:    in.Message,
		ReceivedAt: s.now().UTC(),
	}
	if err := s.tasks.EnqueueContactMessage(ctx, msg); err != nil {
		logger.Errorf(ctx, "❌  Failed to enqueue contact message from %q: %v", in.Email, err)
		return err
	}
	logger.Infof(ctx, "✅  Contact message from %q accepted", in.Email)
	return nil
}
