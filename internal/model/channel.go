package model

// Channel is a social or media distribution surface.
type Channel string

const (
	Instagram Channel = "Instagram"
	Facebook  Channel = "Facebook"
	LinkedIn  Channel = "LinkedIn"
	YouTube   Channel = "YouTube"
	WhatsApp  Channel = "WhatsApp"
	X         Channel = "X"
	Blog      Channel = "Blog"
)

// AllChannels is the channel picker order.
var AllChannels = []Channel{Instagram, Facebook, LinkedIn, YouTube, WhatsApp, X, Blog}

func (c Channel) Valid() bool {
	switch c {
	case Instagram, Facebook, LinkedIn, YouTube, WhatsApp, X, Blog:
		return true
	}
	return false
}
