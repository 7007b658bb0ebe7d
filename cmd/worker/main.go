package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/portfolio-ms-go/internal/config"
	workerHandler "github.com/fhuszti/portfolio-ms-go/internal/handler/worker"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/mailer"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	contactSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/contact"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()
	defer logger.Flush()

	m := mailer.NewResendMailer(cfg.ResendAPIKey, cfg.MailDevMode)
	deliverSvc := contactSvc.NewContactDeliverer(m, cfg.MailFrom, cfg.MailTo)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeSendContact, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseSendContactPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.SendContactHandler(ctx, p, deliverSvc)
	})

	runWorker(ctx, mux, cfg)
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{
		Concurrency:     4,
		ShutdownTimeout: 30 * time.Second,
	})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// stop accepting new tasks, finish in-flight within ShutdownTimeout
	srv.Shutdown()
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
