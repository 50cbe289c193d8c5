// Package strategy turns campaign context and strategy preferences into
// content ideas and posting cadences. Everything here is deterministic apart
// from the injected id generator.
package strategy

import (
	"fmt"
	"strings"

	"github.com/unclebandit/lifecare-cockpit/internal/model"
)

// IdeaCount is how many ideas a single generation produces.
const IdeaCount = 3

// DefaultHashtag replaces a keyword that has no alphanumeric characters.
const DefaultHashtag = "#BharatLifeCare"

const fallbackDialect = "multi-channel storytelling"

type StrategyInput struct {
	Campaign  model.Campaign
	Tone      model.Tone
	FocusArea model.FocusArea
	Audience  model.Audience
	Keywords  []string
	Channels  []model.Channel
}

// InputFromPreferences pairs a campaign with the current preferences.
func InputFromPreferences(c model.Campaign, p model.StrategyPreferences) StrategyInput {
	return StrategyInput{
		Campaign:  c,
		Tone:      p.Tone,
		FocusArea: p.FocusArea,
		Audience:  p.Audience,
		Keywords:  p.Keywords,
		Channels:  p.Channels,
	}
}

// GenerateContentIdeas returns exactly IdeaCount ideas for the input.
func GenerateContentIdeas(in StrategyInput, newID func() string) []model.ContentIdea {
	hooks := FocusHooks(in.FocusArea)
	pool := keywordPool(in.Keywords, hooks)
	tagline := ToneDescriptor(in.Tone)
	recommended := recommendedChannels(in.Channels)

	ideas := make([]model.ContentIdea, 0, IdeaCount)
	for i := 0; i < IdeaCount; i++ {
		dialect := fallbackDialect
		if len(in.Channels) > 0 {
			dialect = ChannelDialect(in.Channels[i%len(in.Channels)])
		}

		caption := fmt.Sprintf(
			"For %s seeking trustworthy care, %s transforms the experience. %s — this %s drop keeps the conversation alive.",
			audienceLabel(in.Audience), strings.ToLower(in.Campaign.Summary), tagline, dialect,
		)

		ideas = append(ideas, model.ContentIdea{
			ID:                  newID(),
			Headline:            fmt.Sprintf("%s: %s spotlight", in.Campaign.Name, hooks[i%len(hooks)]),
			Caption:             caption,
			Hashtags:            hashtags(pool, i),
			CallToAction:        callToAction(i),
			RecommendedChannels: append([]model.Channel(nil), recommended...),
		})
	}
	return ideas
}

// ToneDescriptor is the tone sentence woven into every caption. Unknown
// tones read as warm.
func ToneDescriptor(t model.Tone) string {
	switch t {
	case model.ToneExpert:
		return "evidence-led with clear medical authority and trust markers"
	case model.ToneEnergetic:
		return "upbeat and action-oriented, inspiring healthy lifestyle choices"
	default:
		return "empathetic and reassuring, celebrating the human side of care"
	}
}

// FocusHooks returns the three hook phrases for a focus area. Unknown areas
// use the preventive hooks.
func FocusHooks(f model.FocusArea) []string {
	switch f {
	case model.FocusWellness:
		return []string{"holistic wellbeing", "nutrition-first care", "mind-body balance"}
	case model.FocusChronicCare:
		return []string{"continuity programs", "digital monitoring", "specialist consults"}
	case model.FocusSurgical:
		return []string{"advanced OT infrastructure", "fast-track recovery", "patient-first safety protocols"}
	default:
		return []string{"routine screenings", "lifestyle coaching", "family health packages"}
	}
}

// ChannelDialect describes the content style that suits a channel.
func ChannelDialect(c model.Channel) string {
	switch c {
	case model.Instagram:
		return "snackable storytelling with carousels and reels"
	case model.Facebook:
		return "community-first narratives and testimonials"
	case model.LinkedIn:
		return "thought-leadership and organisational credibility"
	case model.YouTube:
		return "episodic explainers with doctor presence"
	case model.WhatsApp:
		return "conversational nudges and clinic updates"
	case model.X:
		return "quick-hit insights and trending health cues"
	case model.Blog:
		return "deep dives, expert guidance, and SEO-rich content"
	default:
		return fallbackDialect
	}
}

func audienceLabel(a model.Audience) string {
	if a == model.AudienceCorporate {
		return "organisations"
	}
	return string(a)
}

func callToAction(i int) string {
	switch i {
	case 0:
		return "Book your preventive health plan consultation"
	case 1:
		return "Download the Bharat Life Care wellness checklist"
	default:
		return "Chat with our care navigator for personalised guidance"
	}
}

// keywordPool is keywords followed by hooks, first occurrence wins.
func keywordPool(keywords, hooks []string) []string {
	seen := make(map[string]bool, len(keywords)+len(hooks))
	pool := make([]string, 0, len(keywords)+len(hooks))
	for _, list := range [][]string{keywords, hooks} {
		for _, k := range list {
			if seen[k] {
				continue
			}
			seen[k] = true
			pool = append(pool, k)
		}
	}
	return pool
}

func hashtags(pool []string, offset int) []string {
	if offset >= len(pool) {
		return []string{DefaultHashtag}
	}
	end := offset + 4
	if end > len(pool) {
		end = len(pool)
	}

	tags := make([]string, 0, end-offset)
	for _, k := range pool[offset:end] {
		tags = append(tags, Hashtag(k))
	}
	return tags
}

// Hashtag strips everything but ASCII letters and digits and prefixes '#'.
func Hashtag(keyword string) string {
	var b strings.Builder
	for _, r := range keyword {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return DefaultHashtag
	}
	return "#" + b.String()
}

func recommendedChannels(channels []model.Channel) []model.Channel {
	first := channels
	if len(first) > 3 {
		first = first[:3]
	}
	seen := make(map[model.Channel]bool, len(first))
	out := make([]model.Channel, 0, len(first))
	for _, c := range first {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
