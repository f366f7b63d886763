package domain

import "context"

// ChannelKind identifies a messaging network.
type ChannelKind string

const (
	ChannelWhatsApp  ChannelKind = "whatsapp"
	ChannelTelegram  ChannelKind = "telegram"
	ChannelFacebook  ChannelKind = "facebook"
	ChannelInstagram ChannelKind = "instagram"
	ChannelEmail     ChannelKind = "email"
)

// Channel delivers messages to a single destination (phone number, username, address).
type Channel interface {
	Name() string
	Kind() ChannelKind
	Destination() string
	Send(ctx context.Context, msg Message) error
}
