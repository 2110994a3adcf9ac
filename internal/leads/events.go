package leads

import (
	"context"
	"fmt"

	"leadscore_backend/internal/events"
	"leadscore_backend/platform/logger"
)

// subscribeAuditLog registers the audit trail handlers. Every scored lead
// and every scheduled follow-up produces one structured audit line carrying
// only hashed identifiers, so the log stream doubles as a privacy-safe
// record of scoring activity.
func subscribeAuditLog(bus events.Bus, log *logger.Logger) {
	bus.Subscribe(events.LeadScored{}.EventName(), leadScoredAuditHandler(log))
	bus.Subscribe(events.FollowUpScheduled{}.EventName(), followUpAuditHandler(log))
}

func leadScoredAuditHandler(log *logger.Logger) events.HandlerFunc {
	return func(ctx context.Context, event events.Event) error {
		scored, ok := event.(events.LeadScored)
		if !ok {
			return fmt.Errorf("audit: unexpected event type %T for %s", event, event.EventName())
		}

		log.Info("audit lead scored",
			"leadId", scored.LeadID,
			"hashedEmail", scored.HashedEmail,
			"hashedPhone", scored.HashedPhone,
			"initialScore", scored.InitialScore,
			"rerankedScore", scored.RerankedScore,
			"intentLevel", scored.IntentLevel,
			"occurredAt", scored.OccurredAt(),
		)
		return nil
	}
}

func followUpAuditHandler(log *logger.Logger) events.HandlerFunc {
	return func(ctx context.Context, event events.Event) error {
		scheduled, ok := event.(events.FollowUpScheduled)
		if !ok {
			return fmt.Errorf("audit: unexpected event type %T for %s", event, event.EventName())
		}

		log.Info("audit follow-up scheduled",
			"leadId", scheduled.LeadID,
			"hashedEmail", scheduled.HashedEmail,
			"occurredAt", scheduled.OccurredAt(),
		)
		return nil
	}
}
