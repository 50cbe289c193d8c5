package queue

import (
	"time"
)

// WorkflowTopic carries every cockpit mutation.
const WorkflowTopic = "workflow_events"

type EventKind string

const (
	CampaignAdded      EventKind = "campaign.added"
	TaskAdded          EventKind = "task.added"
	TaskAdvanced       EventKind = "task.advanced"
	PostScheduled      EventKind = "post.scheduled"
	PostStatusChanged  EventKind = "post.status_changed"
	AssistantReplied   EventKind = "assistant.replied"
	IdeasRegenerated   EventKind = "ideas.regenerated"
	PreferencesUpdated EventKind = "preferences.updated"
)

// WorkflowEvent describes one committed mutation.
type WorkflowEvent struct {
	Kind       EventKind `json:"kind"`
	EntityID   string    `json:"entity_id,omitempty"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurred_at"`
}
