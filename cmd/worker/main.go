package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"leadscore_backend/internal/advisor"
	"leadscore_backend/internal/notification"
	"leadscore_backend/internal/scheduler"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting follow-up worker", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sender := notification.NewSender(cfg, log)

	adv, err := advisor.New(ctx, cfg, log)
	if err != nil {
		// Advisor is optional; a broken key should not stop reminders.
		log.Error("failed to initialize advisor", "error", err)
		adv = nil
	}

	worker, err := scheduler.NewWorker(cfg, sender, adv, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	worker.Run(ctx)
	log.Info("follow-up worker stopped")
}
