// Package flow runs the interactive session: pick a channel, address it,
// pick a message type, fill its fields and send it.
package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"chatbot/internal/bus"
	"chatbot/internal/channel"
	"chatbot/internal/domain"
	"chatbot/internal/message"

	"github.com/google/uuid"
)

// Outcome is the terminal state of a session.
type Outcome int

const (
	// OutcomeAborted means Run returned an error before reaching a terminal state.
	OutcomeAborted Outcome = iota
	OutcomeSent
	OutcomeInvalidChannel
	OutcomeInvalidMessageType
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAborted:
		return "aborted"
	case OutcomeSent:
		return "sent"
	case OutcomeInvalidChannel:
		return "invalid_channel"
	case OutcomeInvalidMessageType:
		return "invalid_message_type"
	default:
		return "unknown"
	}
}

// Result describes how a session ended. Channel and Message are nil when the
// session stopped before they were built.
type Result struct {
	SessionID string
	Outcome   Outcome
	Channel   domain.Channel
	Message   domain.Message
}

// Config wires a Session to its collaborators.
type Config struct {
	In       domain.Prompter
	Out      io.Writer
	Channels *channel.Factory
	Phrases  Phrases
	Events   *bus.EventBus // optional
	Logger   *slog.Logger
	Now      func() time.Time // defaults to time.Now
	NewID    func() string    // defaults to uuid.NewString
}

// Session drives one channel/message exchange.
type Session struct {
	in       domain.Prompter
	out      io.Writer
	channels *channel.Factory
	phrases  Phrases
	events   *bus.EventBus
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string

	id string
}

func NewSession(cfg Config) *Session {
	if cfg.Phrases.Destination == nil {
		cfg.Phrases = English
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return &Session{
		in:       cfg.In,
		out:      cfg.Out,
		channels: cfg.Channels,
		phrases:  cfg.Phrases,
		events:   cfg.Events,
		logger:   cfg.Logger,
		now:      cfg.Now,
		newID:    cfg.NewID,
	}
}

// Run executes the session once. Invalid selections end the session with a
// notice and a nil error; errors are reserved for I/O failures, cancellation
// of ctx and kinds with no registered implementation. ctx is checked before
// every prompt; a read already blocked on input is not interrupted.
func (s *Session) Run(ctx context.Context) (Result, error) {
	s.id = s.newID()
	res := Result{SessionID: s.id}
	log := s.logger.With("session_id", s.id)
	s.emit(bus.EventSessionStarted, nil)

	kind, ok, err := s.selectChannel(ctx)
	if err != nil {
		return res, err
	}
	if !ok {
		res.Outcome = OutcomeInvalidChannel
		return res, s.reject(s.phrases.InvalidChannel, "channel")
	}

	ch, err := s.buildChannel(ctx, kind)
	if err != nil {
		return res, err
	}
	res.Channel = ch
	log.Debug("channel selected", "channel", ch.Name())

	msgKind, ok, err := s.selectMessageKind(ctx)
	if err != nil {
		return res, err
	}
	if !ok {
		res.Outcome = OutcomeInvalidMessageType
		return res, s.reject(s.phrases.InvalidMessageType, "message_type")
	}

	msg, err := s.buildMessage(ctx, msgKind)
	if err != nil {
		return res, err
	}
	res.Message = msg
	log.Debug("message built", "kind", msg.Kind())

	if err := ch.Send(ctx, msg); err != nil {
		return res, fmt.Errorf("send via %s: %w", ch.Name(), err)
	}
	res.Outcome = OutcomeSent
	s.emit(bus.EventMessageSent, map[string]any{
		"channel":     ch.Name(),
		"destination": ch.Destination(),
		"kind":        string(msg.Kind()),
	})
	log.Info("message sent", "channel", ch.Name(), "kind", msg.Kind())
	return res, nil
}

func (s *Session) selectChannel(ctx context.Context) (domain.ChannelKind, bool, error) {
	kinds := channel.Catalog()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = channel.NetworkName(k)
	}
	idx, ok, err := s.choose(ctx, s.phrases.ChannelMenuTitle, labels)
	if err != nil || !ok {
		return "", false, err
	}
	return kinds[idx], true, nil
}

func (s *Session) buildChannel(ctx context.Context, kind domain.ChannelKind) (domain.Channel, error) {
	dest, err := s.ask(ctx, s.phrases.Destination[kind])
	if err != nil {
		return nil, err
	}
	ch, err := s.channels.New(kind, dest)
	if err != nil {
		return nil, fmt.Errorf("build channel: %w", err)
	}
	return ch, nil
}

func (s *Session) selectMessageKind(ctx context.Context) (domain.MessageKind, bool, error) {
	kinds := message.Catalog()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = s.phrases.MessageLabel[k]
	}
	idx, ok, err := s.choose(ctx, s.phrases.MessageMenuTitle, labels)
	if err != nil || !ok {
		return "", false, err
	}
	return kinds[idx], true, nil
}

// buildMessage collects the header, then the fields the kind requires.
// sentAt is taken right after the text is entered.
func (s *Session) buildMessage(ctx context.Context, kind domain.MessageKind) (domain.Message, error) {
	fields, err := message.FieldsFor(kind)
	if err != nil {
		return nil, fmt.Errorf("build message: %w", err)
	}

	text, err := s.ask(ctx, s.phrases.MessageText)
	if err != nil {
		return nil, err
	}
	header := message.Header{Text: text, SentAt: s.now()}

	var att message.Attachment
	if fields.Attachment {
		if att.File, err = s.ask(ctx, s.phrases.AttachmentFile[kind]); err != nil {
			return nil, err
		}
		if att.Format, err = s.ask(ctx, s.phrases.AttachmentFormat[kind]); err != nil {
			return nil, err
		}
	}

	var seconds int
	if fields.Duration {
		raw, err := s.ask(ctx, s.phrases.VideoDuration)
		if err != nil {
			return nil, err
		}
		parsed, ok := message.ParseDuration(raw)
		if ok {
			seconds = parsed
		} else {
			if err := s.println(s.phrases.InvalidDuration); err != nil {
				return nil, err
			}
			s.emit(bus.EventDurationDefaulted, map[string]any{"input": raw})
			s.logger.Warn("invalid duration, defaulting to 0", "session_id", s.id, "input", raw)
		}
	}

	msg, err := message.Build(kind, header, att, seconds)
	if err != nil {
		return nil, fmt.Errorf("build message: %w", err)
	}
	return msg, nil
}

// choose prints a numbered menu and reads a 1-based index. ok is false for
// non-numeric, out-of-range or missing input.
func (s *Session) choose(ctx context.Context, title string, options []string) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	if err := s.println(title); err != nil {
		return 0, false, err
	}
	for i, opt := range options {
		if _, err := fmt.Fprintf(s.out, "%d. %s\n", i+1, opt); err != nil {
			return 0, false, err
		}
	}
	line, err := s.in.Prompt("")
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read selection: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(options) {
		s.logger.Debug("selection rejected", "session_id", s.id, "input", line)
		return 0, false, nil
	}
	return n - 1, true, nil
}

// ask prompts for a free-text field. Missing input yields an empty value.
func (s *Session) ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v, err := s.in.Prompt(label)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return v, nil
}

func (s *Session) reject(notice, step string) error {
	s.emit(bus.EventSelectionRejected, map[string]any{"step": step})
	return s.println(notice)
}

func (s *Session) println(line string) error {
	_, err := fmt.Fprintln(s.out, line)
	return err
}

func (s *Session) emit(eventType string, payload map[string]any) {
	if s.events == nil {
		return
	}
	s.events.Emit(bus.Event{Type: eventType, SessionID: s.id, Payload: payload})
}
