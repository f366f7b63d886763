package channel

import (
	"context"

	"chatbot/internal/domain"
)

// WhatsApp implements domain.Channel for WhatsApp Business chat addressed by phone number.
type WhatsApp struct {
	sender
}

// NewWhatsApp creates a WhatsApp channel for cfg.Destination.
func NewWhatsApp(cfg Config) *WhatsApp {
	return &WhatsApp{sender: newSender("WhatsApp", cfg)}
}

func (c *WhatsApp) Kind() domain.ChannelKind { return domain.ChannelWhatsApp }

func (c *WhatsApp) Send(ctx context.Context, msg domain.Message) error {
	return c.deliver(ctx, c.dest, msg)
}
