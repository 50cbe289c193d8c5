package strategy

import "github.com/unclebandit/lifecare-cockpit/internal/model"

// FallbackCadence is suggested for channels without a dedicated playbook.
const FallbackCadence = "Maintain presence with contextual storytelling"

type CadenceSuggestion struct {
	Channel model.Channel `json:"channel"`
	Cadence string        `json:"cadence"`
}

// CadenceSuggestions maps each channel, in order, to its posting cadence.
func CadenceSuggestions(channels []model.Channel) []CadenceSuggestion {
	out := make([]CadenceSuggestion, 0, len(channels))
	for _, c := range channels {
		out = append(out, CadenceSuggestion{Channel: c, Cadence: CadenceFor(c)})
	}
	return out
}

func CadenceFor(c model.Channel) string {
	switch c {
	case model.Instagram:
		return "5x weekly blend of reels, carousels, and stories"
	case model.Facebook:
		return "4x weekly community stories and patient testimonials"
	case model.LinkedIn:
		return "3x weekly, mix of leadership POV and care innovation"
	case model.YouTube:
		return "Bi-weekly, 6-8 min doctor-led explainers with patient queries"
	case model.WhatsApp:
		return "Twice weekly nudges for appointment slots and care plans"
	case model.X:
		return "Daily industry cues with Bharat Life Care POV"
	case model.Blog:
		return "Weekly long-form guide optimised for local health intent"
	default:
		return FallbackCadence
	}
}
