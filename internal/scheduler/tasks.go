package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskLeadFollowUp = "leads.followup"

// LeadFollowUpPayload carries what the worker needs to nudge the sales
// team about a hot lead. Only hashed identifiers are included; the sales
// team looks up the full record by lead ID.
type LeadFollowUpPayload struct {
	LeadID        int64  `json:"leadId"`
	HashedEmail   string `json:"hashedEmail"`
	IntentLevel   string `json:"intentLevel"`
	RerankedScore int    `json:"rerankedScore"`
	Comments      string `json:"comments"`
}

func NewLeadFollowUpTask(payload LeadFollowUpPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLeadFollowUp, data), nil
}

func ParseLeadFollowUpPayload(task *asynq.Task) (LeadFollowUpPayload, error) {
	var payload LeadFollowUpPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadFollowUpPayload{}, err
	}
	return payload, nil
}
