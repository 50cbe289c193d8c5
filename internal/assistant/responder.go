// Package assistant synthesizes the cockpit steward's replies from the
// current workflow state. Replies are templated; no model is called.
package assistant

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/unclebandit/lifecare-cockpit/internal/model"
)

// TimestampLayout is the long date-time format used inside replies.
const TimestampLayout = "Jan 2, 2006, 3:04:05 PM"

const (
	ideasLine   = "\nI have drafted fresh content ideas referencing preventive care success stories and week-long wellness commitments. Would you like them slotted into the content bank?"
	genericLine = "\nLet me know if you want me to nudge the medical teams for testimonials, draft captions, or rebalance the channel mix."
	greeting    = "Namaste! I am the Bharat Life Care social media steward. I have already synced your key campaigns, cadences, and approvals. Ask for ideas, scheduling support, or campaign intelligence anytime."
)

// Snapshot is the slice of workflow state a reply may draw on.
type Snapshot struct {
	Campaigns []model.Campaign
	Tasks     []model.Task
	Schedule  []model.ScheduledPost
	Metrics   []model.MetricSnapshot
}

// Greeting is the opening assistant message of a fresh thread.
func Greeting(now time.Time, newID func() string) model.AssistantMessage {
	return model.AssistantMessage{
		ID:        newID(),
		Role:      model.RoleAssistant,
		Content:   greeting,
		Timestamp: now,
	}
}

// Respond builds one assistant reply. It does not append it anywhere.
func Respond(history []model.AssistantMessage, snap Snapshot, now time.Time, newID func() string) model.AssistantMessage {
	text := strings.ToLower(lastUserContent(history))

	var b strings.Builder
	fmt.Fprintf(&b, "Here is the latest cockpit summary for Bharat Life Care as of %s:\n", now.Format(TimestampLayout))
	fmt.Fprintf(&b, "• %d active campaigns, with %d posts scheduled this week.\n",
		countActive(snap.Campaigns), countScheduled(snap.Schedule))

	if urgent := urgentTitles(snap.Tasks); len(urgent) > 0 {
		fmt.Fprintf(&b, "• %d urgent tasks flagged: %s.\n", len(urgent), strings.Join(urgent, ", "))
	}

	if top, ok := TopEngagement(snap.Metrics); ok {
		fmt.Fprintf(&b, "• %s is leading with %.1f%% engagement and %d new followers.\n",
			top.Channel, top.EngagementRate, top.FollowerDelta)
	}

	switch {
	case strings.Contains(text, "idea") || strings.Contains(text, "content"):
		b.WriteString(ideasLine)
	case strings.Contains(text, "report") || strings.Contains(text, "roi"):
		if best, ok := TopROAS(snap.Metrics); ok {
			fmt.Fprintf(&b, "\nROI highlight: %s is compounding returns at %.2fx with controlled spend of ₹%.0f.",
				best.Channel, best.ROAS, best.Spend)
		}
	case strings.Contains(text, "schedule") || strings.Contains(text, "calendar"):
		if next, ok := NextPost(snap.Schedule); ok {
			fmt.Fprintf(&b, "\nYour next content drop is a %s for %s on %s.",
				next.Format, next.Channel, next.ScheduledAt.Format(TimestampLayout))
		}
	default:
		b.WriteString(genericLine)
	}

	return model.AssistantMessage{
		ID:        newID(),
		Role:      model.RoleAssistant,
		Content:   b.String(),
		Timestamp: now,
	}
}

func lastUserContent(history []model.AssistantMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == model.RoleUser {
			return history[i].Content
		}
	}
	return ""
}

func countActive(campaigns []model.Campaign) int {
	n := 0
	for _, c := range campaigns {
		if c.Active() {
			n++
		}
	}
	return n
}

func countScheduled(posts []model.ScheduledPost) int {
	n := 0
	for _, p := range posts {
		if p.Status == model.PostScheduled {
			n++
		}
	}
	return n
}

func urgentTitles(tasks []model.Task) []string {
	var titles []string
	for _, t := range tasks {
		if t.Priority == model.TaskUrgent {
			titles = append(titles, t.Title)
		}
	}
	return titles
}

// TopEngagement returns the metric with the highest engagement rate. Ties
// go to the earlier entry.
func TopEngagement(metrics []model.MetricSnapshot) (model.MetricSnapshot, bool) {
	return topBy(metrics, func(a, b model.MetricSnapshot) bool { return a.EngagementRate > b.EngagementRate })
}

// TopROAS returns the metric with the highest return on ad spend. Ties go
// to the earlier entry.
func TopROAS(metrics []model.MetricSnapshot) (model.MetricSnapshot, bool) {
	return topBy(metrics, func(a, b model.MetricSnapshot) bool { return a.ROAS > b.ROAS })
}

func topBy(metrics []model.MetricSnapshot, less func(a, b model.MetricSnapshot) bool) (model.MetricSnapshot, bool) {
	if len(metrics) == 0 {
		return model.MetricSnapshot{}, false
	}
	sorted := append([]model.MetricSnapshot(nil), metrics...)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted[0], true
}

// NextPost returns the post with the earliest ScheduledAt, whatever its
// status.
func NextPost(posts []model.ScheduledPost) (model.ScheduledPost, bool) {
	if len(posts) == 0 {
		return model.ScheduledPost{}, false
	}
	sorted := append([]model.ScheduledPost(nil), posts...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ScheduledAt.Before(sorted[j].ScheduledAt) })
	return sorted[0], true
}
