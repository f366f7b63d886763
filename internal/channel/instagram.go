package channel

import (
	"context"

	"chatbot/internal/domain"
)

// Instagram implements domain.Channel for Instagram direct messages addressed by username.
type Instagram struct {
	sender
}

// NewInstagram creates an Instagram channel for cfg.Destination.
func NewInstagram(cfg Config) *Instagram {
	return &Instagram{sender: newSender("Instagram", cfg)}
}

func (c *Instagram) Kind() domain.ChannelKind { return domain.ChannelInstagram }

func (c *Instagram) Send(ctx context.Context, msg domain.Message) error {
	return c.deliver(ctx, c.dest, msg)
}
