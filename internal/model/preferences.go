// internal/model/preferences.go
package model

type Tone string

const (
	ToneWarm      Tone = "warm"
	ToneExpert    Tone = "expert"
	ToneEnergetic Tone = "energetic"
)

func (t Tone) Valid() bool {
	switch t {
	case ToneWarm, ToneExpert, ToneEnergetic:
		return true
	}
	return false
}

type FocusArea string

const (
	FocusPreventive  FocusArea = "preventive"
	FocusWellness    FocusArea = "wellness"
	FocusChronicCare FocusArea = "chronic-care"
	FocusSurgical    FocusArea = "surgical"
)

func (f FocusArea) Valid() bool {
	switch f {
	case FocusPreventive, FocusWellness, FocusChronicCare, FocusSurgical:
		return true
	}
	return false
}

type Audience string

const (
	AudienceFamilies    Audience = "families"
	AudienceMillennials Audience = "millennials"
	AudienceSeniors     Audience = "seniors"
	AudienceCorporate   Audience = "corporate"
)

func (a Audience) Valid() bool {
	switch a {
	case AudienceFamilies, AudienceMillennials, AudienceSeniors, AudienceCorporate:
		return true
	}
	return false
}

// StrategyPreferences drive idea generation and the cadence panel.
type StrategyPreferences struct {
	Tone      Tone      `json:"tone" yaml:"tone"`
	FocusArea FocusArea `json:"focus_area" yaml:"focus_area"`
	Audience  Audience  `json:"audience" yaml:"audience"`
	Keywords  []string  `json:"keywords" yaml:"keywords"`
	Channels  []Channel `json:"channels" yaml:"channels"`
}

// PreferencesPatch is a partial update. Nil fields are left alone; a
// non-nil empty slice clears the list.
type PreferencesPatch struct {
	Tone      *Tone      `json:"tone,omitempty"`
	FocusArea *FocusArea `json:"focus_area,omitempty"`
	Audience  *Audience  `json:"audience,omitempty"`
	Keywords  *[]string  `json:"keywords,omitempty"`
	Channels  *[]Channel `json:"channels,omitempty"`
}

// Apply shallow-merges the patch into p and returns the result. p is not
// modified.
func (patch PreferencesPatch) Apply(p StrategyPreferences) StrategyPreferences {
	out := p
	if patch.Tone != nil {
		out.Tone = *patch.Tone
	}
	if patch.FocusArea != nil {
		out.FocusArea = *patch.FocusArea
	}
	if patch.Audience != nil {
		out.Audience = *patch.Audience
	}
	if patch.Keywords != nil {
		out.Keywords = append([]string(nil), (*patch.Keywords)...)
	}
	if patch.Channels != nil {
		out.Channels = append([]Channel(nil), (*patch.Channels)...)
	}
	return out
}
