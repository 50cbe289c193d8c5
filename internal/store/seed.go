package store

import (
	"time"

	"github.com/unclebandit/lifecare-cockpit/internal/assistant"
	"github.com/unclebandit/lifecare-cockpit/internal/model"
)

// Seed is the initial content of a store.
type Seed struct {
	Campaigns      []model.Campaign          `yaml:"campaigns"`
	Tasks          []model.Task              `yaml:"tasks"`
	ScheduledPosts []model.ScheduledPost     `yaml:"scheduled_posts"`
	Metrics        []model.MetricSnapshot    `yaml:"metrics"`
	Thread         []model.AssistantMessage  `yaml:"assistant_thread"`
	Preferences    model.StrategyPreferences `yaml:"preferences"`
}

// DefaultPreferences are the strategy settings a fresh cockpit starts with.
func DefaultPreferences() model.StrategyPreferences {
	return model.StrategyPreferences{
		Tone:      model.ToneWarm,
		FocusArea: model.FocusPreventive,
		Audience:  model.AudienceFamilies,
		Keywords:  []string{"HeartHealth", "PreventiveCare", "BharatLifeCare"},
		Channels:  []model.Channel{model.Instagram, model.LinkedIn, model.WhatsApp},
	}
}

// DefaultSeed builds the sample Bharat Life Care workspace, with dates
// relative to now.
func DefaultSeed(now time.Time, newID func() string) Seed {
	day := 24 * time.Hour

	preventive := model.Campaign{
		ID:         newID(),
		Name:       "Heartbeat of Preventive Care Week",
		Objective:  "Drive 120 preventive health check enrolments",
		Summary:    "Highlight the preventive cardiology protocol and family wellness plans",
		StartDate:  now,
		EndDate:    now.Add(14 * day),
		Status:     model.CampaignLive,
		Priority:   model.CampaignHigh,
		Channels:   []model.Channel{model.Instagram, model.LinkedIn, model.WhatsApp, model.Blog},
		HeroMetric: "Wellness package enrolments",
	}
	oncology := model.Campaign{
		ID:         newID(),
		Name:       "Precision Oncology Navigator",
		Objective:  "Build recall for oncologist-led tumour board",
		Summary:    "Communicate Bharat Life Care’s multi-disciplinary oncology program",
		StartDate:  now.Add(3 * day),
		EndDate:    now.Add(28 * day),
		Status:     model.CampaignPlanning,
		Priority:   model.CampaignMedium,
		Channels:   []model.Channel{model.Facebook, model.YouTube, model.Instagram},
		HeroMetric: "Consultations booked",
	}

	return Seed{
		Campaigns: []model.Campaign{preventive, oncology},
		Tasks: []model.Task{
			{
				ID:         newID(),
				Title:      "Source cardiologist testimonial for reel",
				Stage:      model.StageReview,
				Owner:      "Aparna (Medical marketing)",
				DueDate:    now.Add(day),
				CampaignID: preventive.ID,
				Priority:   model.TaskUrgent,
				Notes:      "Need compliance nod for Dr. Menon footage",
			},
			{
				ID:         newID(),
				Title:      "Draft LinkedIn POV on preventive diagnostics",
				Stage:      model.StageDrafting,
				Owner:      "Rahul (Copy)",
				DueDate:    now.Add(2 * day),
				CampaignID: preventive.ID,
				Priority:   model.TaskHigh,
			},
			{
				ID:         newID(),
				Title:      "Build oncology FAQ drip for WhatsApp",
				Stage:      model.StageIdeation,
				Owner:      "Usha (CRM)",
				DueDate:    now.Add(4 * day),
				CampaignID: oncology.ID,
				Priority:   model.TaskMedium,
			},
		},
		ScheduledPosts: []model.ScheduledPost{
			{
				ID:           newID(),
				CampaignID:   preventive.ID,
				Channel:      model.Instagram,
				Format:       model.FormatReel,
				ContentTheme: "Story of the week – heart wellness",
				Caption:      "Every beat matters. Bharat Life Care’s preventive cardiology team helps your family stay ahead of risk.",
				ScheduledAt:  now.Add(day),
				Status:       model.PostScheduled,
			},
			{
				ID:           newID(),
				CampaignID:   preventive.ID,
				Channel:      model.Blog,
				Format:       model.FormatLongform,
				ContentTheme: "Cardiac risk screening explainer",
				Caption:      "Guide on complete cardiac screening protocols and early intervention practices.",
				ScheduledAt:  now.Add(2 * day),
				Status:       model.PostDraft,
			},
			{
				ID:           newID(),
				CampaignID:   oncology.ID,
				Channel:      model.YouTube,
				Format:       model.FormatLongform,
				ContentTheme: "Tumour board walkthrough",
				Caption:      "Behind the scenes on Bharat Life Care’s oncology tumour board coordination.",
				ScheduledAt:  now.Add(5 * day),
				Status:       model.PostScheduled,
			},
		},
		Metrics: []model.MetricSnapshot{
			{ID: newID(), Channel: model.Instagram, EngagementRate: 5.4, FollowerDelta: 312, Conversions: 46, Spend: 21000, ROAS: 3.4, Sentiment: model.SentimentPositive},
			{ID: newID(), Channel: model.LinkedIn, EngagementRate: 3.1, FollowerDelta: 140, Conversions: 18, Spend: 8000, ROAS: 4.1, Sentiment: model.SentimentPositive},
			{ID: newID(), Channel: model.Facebook, EngagementRate: 2.8, FollowerDelta: 220, Conversions: 35, Spend: 15000, ROAS: 2.9, Sentiment: model.SentimentNeutral},
		},
		Thread:      []model.AssistantMessage{assistant.Greeting(now, newID)},
		Preferences: DefaultPreferences(),
	}
}
