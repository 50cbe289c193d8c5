package store

import (
	"github.com/unclebandit/lifecare-cockpit/internal/assistant"
	"github.com/unclebandit/lifecare-cockpit/internal/model"
)

// State is a full copy of the store contents, served by GET /state and
// written out by `cockpit export`.
type State struct {
	Campaigns      []model.Campaign          `json:"campaigns"`
	Tasks          []model.Task              `json:"tasks"`
	ScheduledPosts []model.ScheduledPost     `json:"scheduled_posts"`
	Metrics        []model.MetricSnapshot    `json:"metrics"`
	Thread         []model.AssistantMessage  `json:"assistant_thread"`
	Preferences    model.StrategyPreferences `json:"preferences"`
	IdeaBank       []model.ContentIdea       `json:"idea_bank"`
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Campaigns:      cloneCampaigns(s.campaigns),
		Tasks:          append([]model.Task(nil), s.tasks...),
		ScheduledPosts: append([]model.ScheduledPost(nil), s.scheduledPosts...),
		Metrics:        append([]model.MetricSnapshot(nil), s.metrics...),
		Thread:         append([]model.AssistantMessage(nil), s.thread...),
		Preferences:    clonePreferences(s.preferences),
		IdeaBank:       cloneIdeas(s.ideaBank),
	}
}

// Seed converts the state back into seed data. The idea bank is not part
// of a seed; it is regenerated on first view.
func (st State) Seed() Seed {
	return Seed{
		Campaigns:      st.Campaigns,
		Tasks:          st.Tasks,
		ScheduledPosts: st.ScheduledPosts,
		Metrics:        st.Metrics,
		Thread:         st.Thread,
		Preferences:    st.Preferences,
	}
}

// Snapshot returns the collections the assistant reads.
func (s *Store) Snapshot() assistant.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() assistant.Snapshot {
	return assistant.Snapshot{
		Campaigns: cloneCampaigns(s.campaigns),
		Tasks:     append([]model.Task(nil), s.tasks...),
		Schedule:  append([]model.ScheduledPost(nil), s.scheduledPosts...),
		Metrics:   append([]model.MetricSnapshot(nil), s.metrics...),
	}
}

func (s *Store) Campaigns() []model.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCampaigns(s.campaigns)
}

func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Task(nil), s.tasks...)
}

func (s *Store) ScheduledPosts() []model.ScheduledPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ScheduledPost(nil), s.scheduledPosts...)
}

func (s *Store) Metrics() []model.MetricSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.MetricSnapshot(nil), s.metrics...)
}

func (s *Store) Thread() []model.AssistantMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.AssistantMessage(nil), s.thread...)
}

func (s *Store) Preferences() model.StrategyPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePreferences(s.preferences)
}

func (s *Store) IdeaBank() []model.ContentIdea {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneIdeas(s.ideaBank)
}

func (s *Store) Campaign(id string) (model.Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.campaigns {
		if c.ID == id {
			c.Channels = append([]model.Channel(nil), c.Channels...)
			return c, true
		}
	}
	return model.Campaign{}, false
}

func (s *Store) Task(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (s *Store) Post(id string) (model.ScheduledPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.scheduledPosts {
		if p.ID == id {
			return p, true
		}
	}
	return model.ScheduledPost{}, false
}

// CampaignName resolves a weak campaign reference for display.
func (s *Store) CampaignName(id string) string {
	if c, ok := s.Campaign(id); ok {
		return c.Name
	}
	return UnknownCampaign
}

func cloneCampaigns(in []model.Campaign) []model.Campaign {
	if in == nil {
		return nil
	}
	out := make([]model.Campaign, len(in))
	for i, c := range in {
		c.Channels = append([]model.Channel(nil), c.Channels...)
		out[i] = c
	}
	return out
}

func cloneIdeas(in []model.ContentIdea) []model.ContentIdea {
	if in == nil {
		return nil
	}
	out := make([]model.ContentIdea, len(in))
	for i, idea := range in {
		idea.Hashtags = append([]string(nil), idea.Hashtags...)
		idea.RecommendedChannels = append([]model.Channel(nil), idea.RecommendedChannels...)
		out[i] = idea
	}
	return out
}

func clonePreferences(p model.StrategyPreferences) model.StrategyPreferences {
	p.Keywords = append([]string(nil), p.Keywords...)
	p.Channels = append([]model.Channel(nil), p.Channels...)
	return p
}
