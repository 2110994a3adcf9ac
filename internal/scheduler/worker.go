package scheduler

import (
	"context"
	"fmt"

	"leadscore_backend/internal/advisor"
	"leadscore_backend/internal/notification"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Worker consumes follow-up tasks from the queue. The email sender and
// advisor may be nil; a nil sender logs the reminder instead of mailing it.
type Worker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	sender  *notification.Sender
	advisor *advisor.Advisor
	log     *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, sender *notification.Sender, adv *advisor.Advisor, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:  server,
		mux:     mux,
		sender:  sender,
		advisor: adv,
		log:     log,
	}

	mux.HandleFunc(TaskLeadFollowUp, w.handleLeadFollowUp)

	return w, nil
}

func (w *Worker) handleLeadFollowUp(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseLeadFollowUpPayload(task)
	if err != nil {
		return err
	}

	// The advisor is best effort. A failed or disabled advisor still
	// produces a reminder, just without the note.
	note := w.advisor.Note(ctx, payload.Comments)

	if w.sender == nil {
		w.log.Info("follow-up reminder due (email disabled)",
			"leadId", payload.LeadID,
			"hashedEmail", payload.HashedEmail,
			"intentLevel", payload.IntentLevel,
		)
		return nil
	}

	err = w.sender.SendFollowUpReminder(ctx, notification.FollowUpDetails{
		LeadID:        payload.LeadID,
		HashedEmail:   payload.HashedEmail,
		IntentLevel:   payload.IntentLevel,
		RerankedScore: payload.RerankedScore,
		Comments:      payload.Comments,
		AdvisorNote:   note,
	})
	if err != nil {
		w.log.Error("failed to send follow-up reminder", "error", err, "leadId", payload.LeadID)
		return err
	}

	w.log.Info("follow-up reminder sent", "leadId", payload.LeadID, "intentLevel", payload.IntentLevel)
	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
