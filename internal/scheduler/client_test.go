package scheduler

import (
	"context"
	"testing"
	"time"

	"leadscore_backend/platform/config"

	"github.com/alicebob/miniredis/v2"
)

func TestScheduleLeadFollowUp(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &config.Config{
		RedisURL:       "redis://" + mr.Addr(),
		AsynqQueueName: "followups",
	}

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	payload := LeadFollowUpPayload{
		LeadID:        42,
		HashedEmail:   "a1b2c3d4e5f60718",
		IntentLevel:   "Very High",
		RerankedScore: 91,
		Comments:      "ready to buy asap",
	}
	if err := client.ScheduleLeadFollowUp(context.Background(), payload, time.Hour); err != nil {
		t.Fatalf("ScheduleLeadFollowUp: %v", err)
	}

	if len(mr.Keys()) == 0 {
		t.Fatal("expected task data in redis")
	}
}

func TestNewClientRequiresRedisURL(t *testing.T) {
	if _, err := NewClient(&config.Config{}); err == nil {
		t.Fatal("expected error without redis url")
	}
}

func TestFollowUpPayloadRoundTrip(t *testing.T) {
	payload := LeadFollowUpPayload{LeadID: 7, HashedEmail: "feedfacecafebeef", IntentLevel: "Very High", RerankedScore: 88}

	task, err := NewLeadFollowUpTask(payload)
	if err != nil {
		t.Fatalf("NewLeadFollowUpTask: %v", err)
	}
	if task.Type() != TaskLeadFollowUp {
		t.Fatalf("task type = %q", task.Type())
	}

	parsed, err := ParseLeadFollowUpPayload(task)
	if err != nil {
		t.Fatalf("ParseLeadFollowUpPayload: %v", err)
	}
	if parsed != payload {
		t.Fatalf("payload changed in round trip: %+v", parsed)
	}
}
