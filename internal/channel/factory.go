package channel

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"chatbot/internal/domain"
)

// ErrUnknownChannel is returned when no constructor is registered for a kind.
var ErrUnknownChannel = errors.New("unknown channel")

// Constructor creates a channel from its shared config.
type Constructor func(cfg Config) domain.Channel

// FactoryConfig carries the settings applied to every channel the factory builds.
type FactoryConfig struct {
	Out        io.Writer
	TimeLayout string
	Logger     *slog.Logger
}

// Factory builds channels by kind.
type Factory struct {
	cfg          FactoryConfig
	constructors map[domain.ChannelKind]Constructor
	mu           sync.RWMutex
}

// NewFactory creates a factory with the built-in networks registered.
func NewFactory(cfg FactoryConfig) *Factory {
	f := &Factory{
		cfg:          cfg,
		constructors: make(map[domain.ChannelKind]Constructor),
	}
	f.registerDefaults()
	return f
}

// RegisterConstructor adds or replaces the constructor for kind.
func (f *Factory) RegisterConstructor(kind domain.ChannelKind, ctor Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[kind] = ctor
}

func (f *Factory) registerDefaults() {
	f.constructors[domain.ChannelWhatsApp] = func(cfg Config) domain.Channel { return NewWhatsApp(cfg) }
	f.constructors[domain.ChannelTelegram] = func(cfg Config) domain.Channel { return NewTelegram(cfg) }
	f.constructors[domain.ChannelFacebook] = func(cfg Config) domain.Channel { return NewFacebook(cfg) }
	f.constructors[domain.ChannelInstagram] = func(cfg Config) domain.Channel { return NewInstagram(cfg) }
	f.constructors[domain.ChannelEmail] = func(cfg Config) domain.Channel { return NewEmail(cfg) }
}

// New builds the channel of the given kind addressed to destination.
func (f *Factory) New(kind domain.ChannelKind, destination string) (domain.Channel, error) {
	f.mu.RLock()
	ctor, ok := f.constructors[kind]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, kind)
	}
	return ctor(Config{
		Destination: destination,
		Out:         f.cfg.Out,
		TimeLayout:  f.cfg.TimeLayout,
		Logger:      f.cfg.Logger,
	}), nil
}

// Catalog returns the channel kinds in menu order.
func Catalog() []domain.ChannelKind {
	return []domain.ChannelKind{
		domain.ChannelWhatsApp,
		domain.ChannelTelegram,
		domain.ChannelFacebook,
		domain.ChannelInstagram,
		domain.ChannelEmail,
	}
}

// NetworkName returns the display name used in menus and send lines.
func NetworkName(kind domain.ChannelKind) string {
	switch kind {
	case domain.ChannelWhatsApp:
		return "WhatsApp"
	case domain.ChannelTelegram:
		return "Telegram"
	case domain.ChannelFacebook:
		return "Facebook"
	case domain.ChannelInstagram:
		return "Instagram"
	case domain.ChannelEmail:
		return "Email"
	default:
		return string(kind)
	}
}

var (
	_ domain.Channel = (*WhatsApp)(nil)
	_ domain.Channel = (*Telegram)(nil)
	_ domain.Channel = (*Facebook)(nil)
	_ domain.Channel = (*Instagram)(nil)
	_ domain.Channel = (*Email)(nil)
)
