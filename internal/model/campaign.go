// internal/model/campaign.go
package model

import "time"

type CampaignStatus string

const (
	CampaignPlanning  CampaignStatus = "planning"
	CampaignLive      CampaignStatus = "live"
	CampaignCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignPlanning, CampaignLive, CampaignCompleted:
		return true
	}
	return false
}

type CampaignPriority string

const (
	CampaignHigh   CampaignPriority = "high"
	CampaignMedium CampaignPriority = "medium"
	CampaignLow    CampaignPriority = "low"
)

func (p CampaignPriority) Valid() bool {
	switch p {
	case CampaignHigh, CampaignMedium, CampaignLow:
		return true
	}
	return false
}

type Campaign struct {
	ID         string           `json:"id" yaml:"id"`
	Name       string           `json:"name" yaml:"name"`
	Objective  string           `json:"objective" yaml:"objective"`
	Summary    string           `json:"summary" yaml:"summary"`
	StartDate  time.Time        `json:"start_date" yaml:"start_date"`
	EndDate    time.Time        `json:"end_date" yaml:"end_date"`
	Status     CampaignStatus   `json:"status" yaml:"status"`
	Priority   CampaignPriority `json:"priority" yaml:"priority"`
	Channels   []Channel        `json:"channels" yaml:"channels"`
	HeroMetric string           `json:"hero_metric" yaml:"hero_metric"`
}

// Active reports whether the campaign still counts toward the cockpit totals.
func (c Campaign) Active() bool {
	return c.Status != CampaignCompleted
}
