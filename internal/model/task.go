// internal/model/task.go
package model

import "time"

// Stage is a task's position in the content production sequence.
type Stage string

const (
	StageIdeation  Stage = "Ideation"
	StageDrafting  Stage = "Drafting"
	StageReview    Stage = "Review"
	StageApproval  Stage = "Approval"
	StageScheduled Stage = "Scheduled"
	StagePublished Stage = "Published"
)

// Stages lists every stage in workflow order.
var Stages = []Stage{StageIdeation, StageDrafting, StageReview, StageApproval, StageScheduled, StagePublished}

// StageIndex returns the position of s in Stages, or -1.
func StageIndex(s Stage) int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Stage) Valid() bool {
	return StageIndex(s) >= 0
}

// NextStage returns the stage after s. Published stays Published, and an
// unknown stage restarts at Ideation.
func NextStage(s Stage) Stage {
	i := StageIndex(s) + 1
	if i >= len(Stages) {
		i = len(Stages) - 1
	}
	return Stages[i]
}

type TaskPriority string

const (
	TaskUrgent TaskPriority = "urgent"
	TaskHigh   TaskPriority = "high"
	TaskMedium TaskPriority = "medium"
	TaskLow    TaskPriority = "low"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskUrgent, TaskHigh, TaskMedium, TaskLow:
		return true
	}
	return false
}

type Task struct {
	ID         string       `json:"id" yaml:"id"`
	Title      string       `json:"title" yaml:"title"`
	Stage      Stage        `json:"stage" yaml:"stage"`
	Owner      string       `json:"owner" yaml:"owner"`
	DueDate    time.Time    `json:"due_date" yaml:"due_date"`
	CampaignID string       `json:"campaign_id" yaml:"campaign_id"` // not guaranteed to exist
	Priority   TaskPriority `json:"priority" yaml:"priority"`
	Notes      string       `json:"notes,omitempty" yaml:"notes,omitempty"`
}
