// internal/model/scheduled_post.go
package model

import "time"

type PostFormat string

const (
	FormatReel     PostFormat = "Reel"
	FormatStory    PostFormat = "Story"
	FormatStatic   PostFormat = "Static"
	FormatCarousel PostFormat = "Carousel"
	FormatLongform PostFormat = "Longform"
	FormatShort    PostFormat = "Short"
)

func (f PostFormat) Valid() bool {
	switch f {
	case FormatReel, FormatStory, FormatStatic, FormatCarousel, FormatLongform, FormatShort:
		return true
	}
	return false
}

type PostStatus string

const (
	PostScheduled PostStatus = "scheduled"
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostScheduled, PostDraft, PostPublished:
		return true
	}
	return false
}

// Toggled is the go-live flip: scheduled becomes published and anything
// else goes back to scheduled.
func (s PostStatus) Toggled() PostStatus {
	if s == PostScheduled {
		return PostPublished
	}
	return PostScheduled
}

type ScheduledPost struct {
	ID           string     `json:"id" yaml:"id"`
	CampaignID   string     `json:"campaign_id" yaml:"campaign_id"`
	Channel      Channel    `json:"channel" yaml:"channel"`
	Format       PostFormat `json:"format" yaml:"format"`
	ContentTheme string     `json:"content_theme" yaml:"content_theme"`
	Caption      string     `json:"caption" yaml:"caption"`
	ScheduledAt  time.Time  `json:"scheduled_at" yaml:"scheduled_at"`
	Status       PostStatus `json:"status" yaml:"status"`
}
