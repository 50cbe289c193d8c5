// internal/service/cockpit_service.go
package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/lifecare-cockpit/internal/errors"
	"github.com/unclebandit/lifecare-cockpit/internal/model"
	"github.com/unclebandit/lifecare-cockpit/internal/queue"
	"github.com/unclebandit/lifecare-cockpit/internal/store"
)

const (
	defaultCampaignRunway = 21 * 24 * time.Hour
	defaultHeroMetric     = "Leads generated"
)

// CockpitService validates commands from the outside world before they
// reach the workflow store, and announces each committed change.
type CockpitService struct {
	Store          *store.Store
	Queue          queue.Queue
	Logger         *zap.Logger
	AssistantDelay time.Duration
}

type NewCampaign struct {
	Name       string                 `json:"name"`
	Objective  string                 `json:"objective"`
	Summary    string                 `json:"summary"`
	StartDate  *time.Time             `json:"start_date,omitempty"`
	EndDate    *time.Time             `json:"end_date,omitempty"`
	Status     model.CampaignStatus   `json:"status"`
	Priority   model.CampaignPriority `json:"priority"`
	Channels   []model.Channel        `json:"channels"`
	HeroMetric string                 `json:"hero_metric"`
}

type NewTask struct {
	Title      string             `json:"title"`
	Stage      model.Stage        `json:"stage"`
	Owner      string             `json:"owner"`
	DueDate    time.Time          `json:"due_date"`
	CampaignID string             `json:"campaign_id"`
	Priority   model.TaskPriority `json:"priority"`
	Notes      string             `json:"notes"`
}

type NewPost struct {
	CampaignID   string           `json:"campaign_id"`
	Channel      model.Channel    `json:"channel"`
	Format       model.PostFormat `json:"format"`
	ContentTheme string           `json:"content_theme"`
	Caption      string           `json:"caption"`
	ScheduledAt  time.Time        `json:"scheduled_at"`
	Status       model.PostStatus `json:"status"`
}

// AssistantExchange is the prompt and the reply it produced.
type AssistantExchange struct {
	Prompt model.AssistantMessage `json:"prompt"`
	Reply  model.AssistantMessage `json:"reply"`
}

func (s *CockpitService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// AddCampaign fills planner defaults, validates and stores a campaign.
func (s *CockpitService) AddCampaign(in NewCampaign) (*model.Campaign, error) {
	name := strings.TrimSpace(in.Name)
	objective := strings.TrimSpace(in.Objective)
	if name == "" {
		return nil, appErrors.NewValidation("name", "is required")
	}
	if objective == "" {
		return nil, appErrors.NewValidation("objective", "is required")
	}
	if len(in.Channels) == 0 {
		return nil, appErrors.NewValidation("channels", "at least one channel is required")
	}
	if err := validateChannels(in.Channels); err != nil {
		return nil, err
	}

	c := model.Campaign{
		Name:       name,
		Objective:  objective,
		Summary:    strings.TrimSpace(in.Summary),
		Status:     in.Status,
		Priority:   in.Priority,
		Channels:   in.Channels,
		HeroMetric: strings.TrimSpace(in.HeroMetric),
	}
	if c.Summary == "" {
		c.Summary = objective
	}
	if c.Status == "" {
		c.Status = model.CampaignPlanning
	}
	if c.Priority == "" {
		c.Priority = model.CampaignMedium
	}
	if c.HeroMetric == "" {
		c.HeroMetric = defaultHeroMetric
	}
	if !c.Status.Valid() {
		return nil, appErrors.NewValidation("status", "unknown campaign status "+string(c.Status))
	}
	if !c.Priority.Valid() {
		return nil, appErrors.NewValidation("priority", "unknown campaign priority "+string(c.Priority))
	}

	c.StartDate = s.Store.Now()
	if in.StartDate != nil {
		c.StartDate = *in.StartDate
	}
	c.EndDate = c.StartDate.Add(defaultCampaignRunway)
	if in.EndDate != nil {
		c.EndDate = *in.EndDate
	}
	if c.EndDate.Before(c.StartDate) {
		return nil, appErrors.NewValidation("end_date", "must not precede start_date")
	}

	created := s.Store.AddCampaign(c)
	s.logger().Info("campaign added", zap.String("campaign_id", created.ID), zap.String("name", created.Name))
	s.publish(queue.CampaignAdded, created.ID, created.Name)

	// The planner's channel mix becomes the strategy channel set.
	channels := append([]model.Channel(nil), created.Channels...)
	s.Store.UpdatePreferences(model.PreferencesPatch{Channels: &channels})
	s.publish(queue.PreferencesUpdated, created.ID, "channels")
	return &created, nil
}

func (s *CockpitService) AddTask(in NewTask) (*model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, appErrors.NewValidation("title", "is required")
	}

	t := model.Task{
		Title:      title,
		Stage:      in.Stage,
		Owner:      strings.TrimSpace(in.Owner),
		DueDate:    in.DueDate,
		CampaignID: in.CampaignID,
		Priority:   in.Priority,
		Notes:      in.Notes,
	}
	if t.Stage == "" {
		t.Stage = model.StageIdeation
	}
	if t.Priority == "" {
		t.Priority = model.TaskMedium
	}
	if !t.Stage.Valid() {
		return nil, appErrors.NewValidation("stage", "unknown stage "+string(t.Stage))
	}
	if !t.Priority.Valid() {
		return nil, appErrors.NewValidation("priority", "unknown task priority "+string(t.Priority))
	}
	if t.DueDate.IsZero() {
		t.DueDate = s.Store.Now()
	}

	created := s.Store.AddTask(t)
	s.logger().Info("task added", zap.String("task_id", created.ID), zap.String("title", created.Title))
	s.publish(queue.TaskAdded, created.ID, created.Title)
	return &created, nil
}

// AdvanceTask moves a task to the stage after its current one. A published
// task stays published.
func (s *CockpitService) AdvanceTask(id string) (*model.Task, error) {
	before, updated, ok := s.Store.UpdateTask(id, func(t model.Task) model.Task {
		t.Stage = model.NextStage(t.Stage)
		return t
	})
	if !ok {
		return nil, appErrors.NewTaskNotFound(id)
	}

	s.logger().Info("task advanced",
		zap.String("task_id", id),
		zap.String("from", string(before.Stage)),
		zap.String("to", string(updated.Stage)))
	s.publish(queue.TaskAdvanced, id, string(before.Stage)+" -> "+string(updated.Stage))
	return &updated, nil
}

func (s *CockpitService) UpdatePostStatus(id string, status model.PostStatus) (*model.ScheduledPost, error) {
	if !status.Valid() {
		return nil, appErrors.NewValidation("status", "unknown post status "+string(status))
	}

	updated, ok := s.Store.UpdatePostStatus(id, status)
	if !ok {
		return nil, appErrors.NewPostNotFound(id)
	}

	s.logger().Info("post status updated", zap.String("post_id", id), zap.String("status", string(status)))
	s.publish(queue.PostStatusChanged, id, string(status))
	return &updated, nil
}

// TogglePostStatus flips a post between scheduled and published.
func (s *CockpitService) TogglePostStatus(id string) (*model.ScheduledPost, error) {
	_, updated, ok := s.Store.UpdatePost(id, func(p model.ScheduledPost) model.ScheduledPost {
		p.Status = p.Status.Toggled()
		return p
	})
	if !ok {
		return nil, appErrors.NewPostNotFound(id)
	}

	s.logger().Info("post status toggled", zap.String("post_id", id), zap.String("status", string(updated.Status)))
	s.publish(queue.PostStatusChanged, id, string(updated.Status))
	return &updated, nil
}

func (s *CockpitService) SchedulePost(in NewPost) (*model.ScheduledPost, error) {
	if !in.Channel.Valid() {
		return nil, appErrors.NewValidation("channel", "unknown channel "+string(in.Channel))
	}
	if !in.Format.Valid() {
		return nil, appErrors.NewValidation("format", "unknown format "+string(in.Format))
	}
	if in.ScheduledAt.IsZero() {
		return nil, appErrors.NewValidation("scheduled_at", "is required")
	}
	if in.Status == "" {
		in.Status = model.PostScheduled
	}
	if !in.Status.Valid() {
		return nil, appErrors.NewValidation("status", "unknown post status "+string(in.Status))
	}

	created := s.Store.SchedulePost(model.ScheduledPost{
		CampaignID:   in.CampaignID,
		Channel:      in.Channel,
		Format:       in.Format,
		ContentTheme: strings.TrimSpace(in.ContentTheme),
		Caption:      strings.TrimSpace(in.Caption),
		ScheduledAt:  in.ScheduledAt,
		Status:       in.Status,
	})

	s.logger().Info("post scheduled", zap.String("post_id", created.ID), zap.String("channel", string(created.Channel)))
	s.publish(queue.PostScheduled, created.ID, string(created.Channel)+" "+string(created.Format))
	return &created, nil
}

// AskAssistant waits out the simulated thinking time, then records the
// prompt and the assistant's reply. Nothing is recorded if ctx ends first.
func (s *CockpitService) AskAssistant(ctx context.Context, prompt string) (*AssistantExchange, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, appErrors.NewValidation("content", "prompt cannot be empty")
	}

	if s.AssistantDelay > 0 {
		timer := time.NewTimer(s.AssistantDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, reply := s.Store.PushAssistantMessage(prompt)
	s.logger().Info("assistant replied", zap.String("prompt_id", user.ID), zap.String("reply_id", reply.ID))
	s.publish(queue.AssistantReplied, reply.ID, prompt)
	return &AssistantExchange{Prompt: user, Reply: reply}, nil
}

func (s *CockpitService) RefreshAssistant() model.AssistantMessage {
	reply := s.Store.RefreshAssistant()
	s.publish(queue.AssistantReplied, reply.ID, "refresh")
	return reply
}

func (s *CockpitService) RegenerateIdeas() []model.ContentIdea {
	ideas := s.Store.RegenerateIdeas()
	s.logger().Info("idea bank regenerated", zap.Int("ideas", len(ideas)))
	s.publish(queue.IdeasRegenerated, "", "")
	return ideas
}

// EnsureIdeas returns the idea bank, generating it first when empty.
func (s *CockpitService) EnsureIdeas() []model.ContentIdea {
	if ideas := s.Store.IdeaBank(); len(ideas) > 0 {
		return ideas
	}
	return s.RegenerateIdeas()
}

func (s *CockpitService) UpdatePreferences(patch model.PreferencesPatch) (model.StrategyPreferences, error) {
	if patch.Tone != nil && !patch.Tone.Valid() {
		return model.StrategyPreferences{}, appErrors.NewValidation("tone", "unknown tone "+string(*patch.Tone))
	}
	if patch.FocusArea != nil && !patch.FocusArea.Valid() {
		return model.StrategyPreferences{}, appErrors.NewValidation("focus_area", "unknown focus area "+string(*patch.FocusArea))
	}
	if patch.Audience != nil && !patch.Audience.Valid() {
		return model.StrategyPreferences{}, appErrors.NewValidation("audience", "unknown audience "+string(*patch.Audience))
	}
	if patch.Channels != nil {
		if err := validateChannels(*patch.Channels); err != nil {
			return model.StrategyPreferences{}, err
		}
	}
	if patch.Keywords != nil {
		cleaned := make([]string, 0, len(*patch.Keywords))
		for _, k := range *patch.Keywords {
			if k = strings.TrimSpace(k); k != "" {
				cleaned = append(cleaned, k)
			}
		}
		patch.Keywords = &cleaned
	}

	prefs := s.Store.UpdatePreferences(patch)
	s.logger().Info("preferences updated",
		zap.String("tone", string(prefs.Tone)),
		zap.String("focus_area", string(prefs.FocusArea)),
		zap.String("audience", string(prefs.Audience)))
	s.publish(queue.PreferencesUpdated, "", "")
	return prefs, nil
}

// AddKeyword appends a hero keyword. A keyword already present is left as is.
func (s *CockpitService) AddKeyword(keyword string) (model.StrategyPreferences, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return model.StrategyPreferences{}, appErrors.NewValidation("keyword", "is required")
	}

	current := s.Store.Preferences()
	if slices.Contains(current.Keywords, keyword) {
		return current, nil
	}
	keywords := append(current.Keywords, keyword)
	return s.UpdatePreferences(model.PreferencesPatch{Keywords: &keywords})
}

func validateChannels(channels []model.Channel) error {
	for _, c := range channels {
		if !c.Valid() {
			return appErrors.NewValidation("channels", "unknown channel "+string(c))
		}
	}
	return nil
}

// publish announces a committed change. Delivery problems never fail the
// command that caused them.
func (s *CockpitService) publish(kind queue.EventKind, entityID, detail string) {
	if s.Queue == nil {
		return
	}
	event := queue.WorkflowEvent{
		Kind:       kind,
		EntityID:   entityID,
		Detail:     detail,
		OccurredAt: s.Store.Now(),
	}
	if err := s.Queue.Publish(queue.WorkflowTopic, event); err != nil {
		s.logger().Warn("failed to publish workflow event", zap.String("kind", string(kind)), zap.Error(err))
	}
}
