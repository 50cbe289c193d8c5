// Package store holds the cockpit's workflow state in memory.
//
// Every mutation swaps in a freshly built collection instead of editing the
// current one, so slices handed out by earlier reads are never changed
// underneath the caller.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unclebandit/lifecare-cockpit/internal/assistant"
	"github.com/unclebandit/lifecare-cockpit/internal/model"
	"github.com/unclebandit/lifecare-cockpit/internal/strategy"
)

// UnknownCampaign is shown for a campaign id with no match.
const UnknownCampaign = "unknown"

type Store struct {
	mu sync.RWMutex

	campaigns      []model.Campaign
	tasks          []model.Task
	scheduledPosts []model.ScheduledPost
	metrics        []model.MetricSnapshot
	thread         []model.AssistantMessage
	preferences    model.StrategyPreferences
	ideaBank       []model.ContentIdea

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides uuid.NewString.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New builds a store from seed data. The seed's slices are copied.
func New(seed Seed, opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.campaigns = cloneCampaigns(seed.Campaigns)
	s.tasks = append([]model.Task(nil), seed.Tasks...)
	s.scheduledPosts = append([]model.ScheduledPost(nil), seed.ScheduledPosts...)
	s.metrics = append([]model.MetricSnapshot(nil), seed.Metrics...)
	s.thread = append([]model.AssistantMessage(nil), seed.Thread...)
	s.preferences = clonePreferences(seed.Preferences)
	return s
}

// Now exposes the store's clock.
func (s *Store) Now() time.Time {
	return s.now()
}

// ====================== Commands ======================

// AddCampaign appends a campaign under a new id. Any id on c is ignored.
func (s *Store) AddCampaign(c model.Campaign) model.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.newID()
	c.Channels = append([]model.Channel(nil), c.Channels...)

	next := make([]model.Campaign, 0, len(s.campaigns)+1)
	next = append(next, s.campaigns...)
	s.campaigns = append(next, c)
	return c
}

// AddTask appends a task under a new id.
func (s *Store) AddTask(t model.Task) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.newID()
	next := make([]model.Task, 0, len(s.tasks)+1)
	next = append(next, s.tasks...)
	s.tasks = append(next, t)
	return t
}

// AdvanceTask sets the stage of the task with the given id. It reports
// whether a task matched; nothing changes otherwise.
func (s *Store) AdvanceTask(id string, stage model.Stage) (model.Task, bool) {
	_, updated, ok := s.UpdateTask(id, func(t model.Task) model.Task {
		t.Stage = stage
		return t
	})
	return updated, ok
}

// UpdateTask replaces the task with the given id by fn's result, computed
// while the store is locked. It returns the task before and after.
func (s *Store) UpdateTask(id string, fn func(model.Task) model.Task) (model.Task, model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Task{}, model.Task{}, false
	}

	before := s.tasks[idx]
	after := fn(before)
	after.ID = before.ID

	next := append([]model.Task(nil), s.tasks...)
	next[idx] = after
	s.tasks = next
	return before, after, true
}

// UpdatePostStatus sets the status of the post with the given id.
func (s *Store) UpdatePostStatus(id string, status model.PostStatus) (model.ScheduledPost, bool) {
	_, updated, ok := s.UpdatePost(id, func(p model.ScheduledPost) model.ScheduledPost {
		p.Status = status
		return p
	})
	return updated, ok
}

// UpdatePost replaces the post with the given id by fn's result, computed
// while the store is locked. It returns the post before and after.
func (s *Store) UpdatePost(id string, fn func(model.ScheduledPost) model.ScheduledPost) (model.ScheduledPost, model.ScheduledPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.scheduledPosts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ScheduledPost{}, model.ScheduledPost{}, false
	}

	before := s.scheduledPosts[idx]
	after := fn(before)
	after.ID = before.ID

	next := append([]model.ScheduledPost(nil), s.scheduledPosts...)
	next[idx] = after
	s.scheduledPosts = next
	return before, after, true
}

// SchedulePost appends a post under a new id.
func (s *Store) SchedulePost(p model.ScheduledPost) model.ScheduledPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.newID()
	next := make([]model.ScheduledPost, 0, len(s.scheduledPosts)+1)
	next = append(next, s.scheduledPosts...)
	s.scheduledPosts = append(next, p)
	return p
}

// PushAssistantMessage records a user message and the assistant's reply to
// it as one step. It returns both.
func (s *Store) PushAssistantMessage(content string) (model.AssistantMessage, model.AssistantMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := model.AssistantMessage{
		ID:        s.newID(),
		Role:      model.RoleUser,
		Content:   content,
		Timestamp: s.now(),
	}

	next := make([]model.AssistantMessage, 0, len(s.thread)+2)
	next = append(next, s.thread...)
	next = append(next, user)

	reply := assistant.Respond(next, s.snapshotLocked(), s.now(), s.newID)
	s.thread = append(next, reply)
	return user, reply
}

// RefreshAssistant appends a fresh reply to the existing thread.
func (s *Store) RefreshAssistant() model.AssistantMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply := assistant.Respond(s.thread, s.snapshotLocked(), s.now(), s.newID)

	next := make([]model.AssistantMessage, 0, len(s.thread)+1)
	next = append(next, s.thread...)
	s.thread = append(next, reply)
	return reply
}

// RegenerateIdeas replaces the idea bank with ideas for the first
// non-completed campaign, falling back to the first campaign. With no
// campaigns the bank becomes empty.
func (s *Store) RegenerateIdeas() []model.ContentIdea {
	s.mu.Lock()
	defer s.mu.Unlock()

	primary, ok := primaryCampaign(s.campaigns)
	if !ok {
		s.ideaBank = []model.ContentIdea{}
		return []model.ContentIdea{}
	}

	s.ideaBank = strategy.GenerateContentIdeas(strategy.InputFromPreferences(primary, s.preferences), s.newID)
	return cloneIdeas(s.ideaBank)
}

// UpdatePreferences shallow-merges patch into the current preferences.
func (s *Store) UpdatePreferences(patch model.PreferencesPatch) model.StrategyPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences = patch.Apply(s.preferences)
	return clonePreferences(s.preferences)
}

func primaryCampaign(campaigns []model.Campaign) (model.Campaign, bool) {
	for _, c := range campaigns {
		if c.Active() {
			return c, true
		}
	}
	if len(campaigns) > 0 {
		return campaigns[0], true
	}
	return model.Campaign{}, false
}
