package leads

import (
	"context"
	"testing"

	"leadscore_backend/internal/events"
	"leadscore_backend/platform/logger"
)

func TestSubscribeAuditLogHandlesDomainEvents(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	subscribeAuditLog(bus, log)

	scored := events.LeadScored{
		BaseEvent:     events.NewBaseEvent(),
		LeadID:        42,
		HashedEmail:   "a1b2c3d4e5f60718",
		HashedPhone:   "feedfacecafebeef",
		InitialScore:  50,
		RerankedScore: 90,
		IntentLevel:   "Very High",
	}
	if err := bus.PublishSync(context.Background(), scored); err != nil {
		t.Fatalf("PublishSync(LeadScored): %v", err)
	}

	scheduled := events.FollowUpScheduled{
		BaseEvent:   events.NewBaseEvent(),
		LeadID:      42,
		HashedEmail: "a1b2c3d4e5f60718",
	}
	if err := bus.PublishSync(context.Background(), scheduled); err != nil {
		t.Fatalf("PublishSync(FollowUpScheduled): %v", err)
	}
}

func TestAuditHandlersRejectForeignEvents(t *testing.T) {
	log := logger.New("development")

	// A handler receiving a payload of the wrong type reports it instead of
	// logging a half-empty audit line.
	err := leadScoredAuditHandler(log)(context.Background(), events.FollowUpScheduled{BaseEvent: events.NewBaseEvent()})
	if err == nil {
		t.Fatal("expected error for mismatched event payload")
	}

	err = followUpAuditHandler(log)(context.Background(), events.LeadScored{BaseEvent: events.NewBaseEvent()})
	if err == nil {
		t.Fatal("expected error for mismatched event payload")
	}
}
