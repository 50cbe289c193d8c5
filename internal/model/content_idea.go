package model

type ContentIdea struct {
	ID                  string    `json:"id" yaml:"id"`
	Headline            string    `json:"headline" yaml:"headline"`
	Caption             string    `json:"caption" yaml:"caption"`
	Hashtags            []string  `json:"hashtags" yaml:"hashtags"`
	CallToAction        string    `json:"call_to_action" yaml:"call_to_action"`
	RecommendedChannels []Channel `json:"recommended_channels" yaml:"recommended_channels"`
}
