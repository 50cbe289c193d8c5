package queue

import (
	"sync"

	"go.uber.org/zap"
)

// ActivityFeed keeps the most recent workflow events, oldest first.
type ActivityFeed struct {
	mu     sync.Mutex
	limit  int
	events []WorkflowEvent
}

func NewActivityFeed(limit int) *ActivityFeed {
	if limit < 1 {
		limit = 100
	}
	return &ActivityFeed{limit: limit}
}

func (f *ActivityFeed) Record(e WorkflowEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := append(f.events, e)
	if len(next) > f.limit {
		next = append([]WorkflowEvent(nil), next[len(next)-f.limit:]...)
	}
	f.events = next
}

// Recent returns a copy of the retained events.
func (f *ActivityFeed) Recent() []WorkflowEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]WorkflowEvent(nil), f.events...)
}

// StartActivitySubscriber feeds workflow events into feed.
func StartActivitySubscriber(q Queue, feed *ActivityFeed, logger *zap.Logger) error {
	return q.Subscribe(WorkflowTopic, func(payload any) error {
		event, ok := payload.(WorkflowEvent)
		if !ok {
			logger.Warn("unexpected payload on workflow topic", zap.Any("payload", payload))
			return nil // no retry
		}

		feed.Record(event)
		logger.Info("workflow event",
			zap.String("kind", string(event.Kind)),
			zap.String("entity_id", event.EntityID),
			zap.String("detail", event.Detail))
		return nil
	})
}
