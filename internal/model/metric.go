package model

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// MetricSnapshot is a read-only engagement reading for one channel.
type MetricSnapshot struct {
	ID             string    `json:"id" yaml:"id"`
	Channel        Channel   `json:"channel" yaml:"channel"`
	EngagementRate float64   `json:"engagement_rate" yaml:"engagement_rate"` // percent
	FollowerDelta  int       `json:"follower_delta" yaml:"follower_delta"`
	Conversions    int       `json:"conversions" yaml:"conversions"`
	Spend          float64   `json:"spend" yaml:"spend"`
	ROAS           float64   `json:"roas" yaml:"roas"`
	Sentiment      Sentiment `json:"sentiment" yaml:"sentiment"`
}
