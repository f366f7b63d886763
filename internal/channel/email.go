package channel

import (
	"context"

	"chatbot/internal/domain"
)

// Email implements domain.Channel for e-mail. The destination is the recipient address.
type Email struct {
	sender
}

// NewEmail creates an e-mail channel for cfg.Destination.
func NewEmail(cfg Config) *Email {
	return &Email{sender: newSender("Email", cfg)}
}

func (c *Email) Kind() domain.ChannelKind { return domain.ChannelEmail }

func (c *Email) Send(ctx context.Context, msg domain.Message) error {
	return c.deliver(ctx, c.dest, msg)
}
