// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leadscore_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadScored is published after a lead has been scored and persisted.
// Identifiers are hashed; raw PII never travels on the bus.
type LeadScored struct {
	BaseEvent
	LeadID        int64  `json:"leadId"`
	HashedEmail   string `json:"hashedEmail"`
	HashedPhone   string `json:"hashedPhone"`
	InitialScore  int    `json:"initialScore"`
	RerankedScore int    `json:"rerankedScore"`
	IntentLevel   string `json:"intentLevel"`
}

func (e LeadScored) EventName() string { return "leads.lead.scored" }

// FollowUpScheduled is published when a Very High intent lead has a
// follow-up reminder enqueued.
type FollowUpScheduled struct {
	BaseEvent
	LeadID      int64  `json:"leadId"`
	HashedEmail string `json:"hashedEmail"`
}

func (e FollowUpScheduled) EventName() string { return "leads.followup.scheduled" }
