package channel

import (
	"context"

	"chatbot/internal/domain"
)

// Facebook implements domain.Channel for Facebook Messenger addressed by username.
type Facebook struct {
	sender
}

// NewFacebook creates a Facebook Messenger channel for cfg.Destination.
func NewFacebook(cfg Config) *Facebook {
	return &Facebook{sender: newSender("Facebook", cfg)}
}

func (c *Facebook) Kind() domain.ChannelKind { return domain.ChannelFacebook }

func (c *Facebook) Send(ctx context.Context, msg domain.Message) error {
	return c.deliver(ctx, c.dest, msg)
}
