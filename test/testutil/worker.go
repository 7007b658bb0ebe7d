package testutil

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	workerHandler "github.com/fhuszti/portfolio-ms-go/internal/handler/worker"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	contactSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/contact"
)

// RecordingMailer hands every email it is asked to send to Sent.
type RecordingMailer struct {
	ch chan port.Email
}

func NewRecordingMailer() *RecordingMailer {
	return &RecordingMailer{ch: make(chan port.Email, 16)}
}

func (m *RecordingMailer) Send(ctx context.Context, e port.Email) error {
	select {
	case m.ch <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sent yields the delivered emails in order.
func (m *RecordingMailer) Sent() <-chan port.Email {
	return m.ch
}

// StartContactWorker starts an asynq worker delivering contact tasks through
// mailer. It returns a function to gracefully shut down the worker.
func StartContactWorker(redisAddr string, mailer port.Mailer) func() {
	deliverSvc := contactSvc.NewContactDeliverer(mailer, "site@example.com", []string{"owner@example.com"})

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeSendContact, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseSendContactPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.SendContactHandler(ctx, p, deliverSvc)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 2})
	go func() {
		if err := srv.Run(mux); err != nil {
			log.Printf("worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}
}
