package service

import (
	"sort"

	"github.com/unclebandit/lifecare-cockpit/internal/assistant"
	appErrors "github.com/unclebandit/lifecare-cockpit/internal/errors"
	"github.com/unclebandit/lifecare-cockpit/internal/model"
	"github.com/unclebandit/lifecare-cockpit/internal/store"
	"github.com/unclebandit/lifecare-cockpit/internal/strategy"
)

// Summary is the top bar of the cockpit.
type Summary struct {
	ActiveCampaigns int `json:"active_campaigns"`
	UrgentTasks     int `json:"urgent_tasks"`
	ScheduledPosts  int `json:"scheduled_posts"`
}

// Insights is the ribbon under the top bar. MomentumChannel is empty when
// there are no metrics.
type Insights struct {
	MomentumChannel    model.Channel `json:"momentum_channel,omitempty"`
	MomentumEngagement float64       `json:"momentum_engagement"`
	ScheduledThisWeek  int           `json:"scheduled_this_week"`
	InReview           int           `json:"in_review"`
}

type MetricTotals struct {
	TotalConversions  int     `json:"total_conversions"`
	NetFollowers      int     `json:"net_followers"`
	AverageEngagement float64 `json:"average_engagement"`
}

type BoardTask struct {
	model.Task
	CampaignName string      `json:"campaign_name"`
	NextStage    model.Stage `json:"next_stage"`
	CanAdvance   bool        `json:"can_advance"`
}

type BoardColumn struct {
	Stage model.Stage `json:"stage"`
	Tasks []BoardTask `json:"tasks"`
}

type TimelinePost struct {
	model.ScheduledPost
	CampaignName string `json:"campaign_name"`
}

type Dashboard struct {
	Summary  Summary                      `json:"summary"`
	Insights Insights                     `json:"insights"`
	Totals   MetricTotals                 `json:"totals"`
	Cadence  []strategy.CadenceSuggestion `json:"cadence"`
}

func (s *CockpitService) Summary() Summary {
	snap := s.Store.Snapshot()
	out := Summary{}
	for _, c := range snap.Campaigns {
		if c.Active() {
			out.ActiveCampaigns++
		}
	}
	for _, t := range snap.Tasks {
		if t.Priority == model.TaskUrgent {
			out.UrgentTasks++
		}
	}
	out.ScheduledPosts = countPosts(snap.Schedule, model.PostScheduled)
	return out
}

func (s *CockpitService) Insights() Insights {
	snap := s.Store.Snapshot()
	out := Insights{ScheduledThisWeek: countPosts(snap.Schedule, model.PostScheduled)}
	if top, ok := assistant.TopEngagement(snap.Metrics); ok {
		out.MomentumChannel = top.Channel
		out.MomentumEngagement = top.EngagementRate
	}
	for _, t := range snap.Tasks {
		if t.Stage == model.StageReview {
			out.InReview++
		}
	}
	return out
}

func (s *CockpitService) MetricTotals() MetricTotals {
	return totals(s.Store.Metrics())
}

func totals(metrics []model.MetricSnapshot) MetricTotals {
	var out MetricTotals
	var engagement float64
	for _, m := range metrics {
		out.TotalConversions += m.Conversions
		out.NetFollowers += m.FollowerDelta
		engagement += m.EngagementRate
	}
	out.AverageEngagement = engagement / float64(max(len(metrics), 1))
	return out
}

// Board groups tasks into one column per stage, in workflow order.
func (s *CockpitService) Board() []BoardColumn {
	tasks := s.Store.Tasks()
	columns := make([]BoardColumn, 0, len(model.Stages))
	for _, stage := range model.Stages {
		col := BoardColumn{Stage: stage, Tasks: []BoardTask{}}
		for _, t := range tasks {
			if t.Stage != stage {
				continue
			}
			col.Tasks = append(col.Tasks, BoardTask{
				Task:         t,
				CampaignName: s.Store.CampaignName(t.CampaignID),
				NextStage:    model.NextStage(t.Stage),
				CanAdvance:   t.Stage != model.StagePublished,
			})
		}
		columns = append(columns, col)
	}
	return columns
}

// Timeline lists posts by scheduled time, earliest first.
func (s *CockpitService) Timeline() []TimelinePost {
	posts := s.Store.ScheduledPosts()
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].ScheduledAt.Before(posts[j].ScheduledAt) })

	out := make([]TimelinePost, 0, len(posts))
	for _, p := range posts {
		out = append(out, TimelinePost{ScheduledPost: p, CampaignName: s.Store.CampaignName(p.CampaignID)})
	}
	return out
}

// UpcomingCampaigns lists campaigns by start date, earliest first.
func (s *CockpitService) UpcomingCampaigns() []model.Campaign {
	campaigns := s.Store.Campaigns()
	sort.SliceStable(campaigns, func(i, j int) bool { return campaigns[i].StartDate.Before(campaigns[j].StartDate) })
	return campaigns
}

// Cadence suggests posting rhythms for the preferred channels.
func (s *CockpitService) Cadence() []strategy.CadenceSuggestion {
	return strategy.CadenceSuggestions(s.Store.Preferences().Channels)
}

func (s *CockpitService) Dashboard() Dashboard {
	return Dashboard{
		Summary:  s.Summary(),
		Insights: s.Insights(),
		Totals:   s.MetricTotals(),
		Cadence:  s.Cadence(),
	}
}

func (s *CockpitService) Campaign(id string) (*model.Campaign, error) {
	c, ok := s.Store.Campaign(id)
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	return &c, nil
}

func (s *CockpitService) Task(id string) (*model.Task, error) {
	t, ok := s.Store.Task(id)
	if !ok {
		return nil, appErrors.NewTaskNotFound(id)
	}
	return &t, nil
}

func (s *CockpitService) Post(id string) (*model.ScheduledPost, error) {
	p, ok := s.Store.Post(id)
	if !ok {
		return nil, appErrors.NewPostNotFound(id)
	}
	return &p, nil
}

// State exports the whole workspace.
func (s *CockpitService) State() store.State {
	return s.Store.State()
}

func countPosts(posts []model.ScheduledPost, status model.PostStatus) int {
	n := 0
	for _, p := range posts {
		if p.Status == status {
			n++
		}
	}
	return n
}
