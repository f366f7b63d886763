// Package channel implements the messaging networks a message can be sent through.
// Sending is a formatted line written to the configured output sink.
package channel

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"chatbot/internal/domain"
)

// DefaultTimeLayout renders the message timestamp in send lines.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// Config is shared by every channel constructor.
type Config struct {
	Destination string
	Out         io.Writer
	TimeLayout  string
	Logger      *slog.Logger
}

// sender holds the state common to all networks and writes the send line.
type sender struct {
	network string
	dest    string
	out     io.Writer
	layout  string
	logger  *slog.Logger
}

func newSender(network string, cfg Config) sender {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.TimeLayout == "" {
		cfg.TimeLayout = DefaultTimeLayout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return sender{
		network: network,
		dest:    cfg.Destination,
		out:     cfg.Out,
		layout:  cfg.TimeLayout,
		logger:  cfg.Logger,
	}
}

func (s sender) Name() string        { return s.network }
func (s sender) Destination() string { return s.dest }

// deliver writes "Sending message to <addr> via <network>: <content> (<sentAt>)".
func (s sender) deliver(ctx context.Context, addr string, msg domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.out, "Sending message to %s via %s: %s (%s)\n",
		addr, s.network, msg.Content(), msg.SentAt().Format(s.layout))
	if err != nil {
		return fmt.Errorf("%s send: %w", s.network, err)
	}
	s.logger.Debug("message sent", "channel", s.network, "to", addr, "kind", msg.Kind())
	return nil
}
