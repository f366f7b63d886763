package channel

import (
	"context"

	"chatbot/internal/domain"
)

// Telegram implements domain.Channel for Telegram chats addressed by username.
type Telegram struct {
	sender
}

// NewTelegram creates a Telegram channel. The username is sent with an @ prefix.
func NewTelegram(cfg Config) *Telegram {
	return &Telegram{sender: newSender("Telegram", cfg)}
}

func (c *Telegram) Kind() domain.ChannelKind { return domain.ChannelTelegram }

// Send addresses the user as @username.
func (c *Telegram) Send(ctx context.Context, msg domain.Message) error {
	return c.deliver(ctx, "@"+c.dest, msg)
}
