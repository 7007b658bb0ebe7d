package worker

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
)

// SendContactHandler handles a send-contact task.
// It converts the incoming task payload to a contact message and delegates
// delivery to the port.ContactDeliverer service.
func SendContactHandler(ctx context.Context, p task.SendContactPayload, svc port.ContactDeliverer) error {
	if strings.TrimSpace(p.Email) == "" || strings.TrimSpace(p.Message) == "" {
		log.Printf("❌  Invalid contact payload from %q", p.Email)
		return fmt.Errorf("invalid contact payload: %w", asynq.SkipRetry)
	}

	msg := model.ContactMessage{
		Name:       p.Name,
		Email:      p.Email,
		Subject:    p.Subject,
		Message:    p.Message,
		ReceivedAt: time.Unix(p.ReceivedAt, 0).UTC(),
	}
	if err := svc.DeliverContact(ctx, msg); err != nil {
		log.Printf("❌  Failed to deliver contact message from %q: %v", p.Email, err)
		return err
	}

	log.Printf("✅  Successfully delivered contact message from %q", p.Email)
	return nil
}
