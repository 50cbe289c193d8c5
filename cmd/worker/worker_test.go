package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/unclebandit/lifecare-cockpit/internal/queue"
)

func TestDecodeEvent(t *testing.T) {
	want := queue.WorkflowEvent{
		Kind:       queue.TaskAdvanced,
		EntityID:   "task-1",
		Detail:     "Review -> Approval",
		OccurredAt: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
	}
	body, _ := json.Marshal(want)

	got, err := decodeEvent(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Kind != want.Kind || got.EntityID != want.EntityID || !got.OccurredAt.Equal(want.OccurredAt) {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if _, err := decodeEvent([]byte("not json")); err == nil {
		t.Errorf("expected error for malformed body")
	}
}
