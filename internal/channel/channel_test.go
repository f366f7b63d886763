package channel

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"chatbot/internal/domain"
	"chatbot/internal/message"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

var sentAt = time.Date(2024, 5, 17, 14, 3, 9, 0, time.UTC)

func newTestFactory(out io.Writer) *Factory {
	return NewFactory(FactoryConfig{Out: out, Logger: testLogger()})
}

func TestSend_LineFormat(t *testing.T) {
	msg := message.NewText(message.Header{Text: "hello", SentAt: sentAt})
	tests := []struct {
		kind domain.ChannelKind
		dest string
		want string
	}{
		{domain.ChannelWhatsApp, "5511999999999", "Sending message to 5511999999999 via WhatsApp: hello (2024-05-17 14:03:09)\n"},
		{domain.ChannelTelegram, "alice", "Sending message to @alice via Telegram: hello (2024-05-17 14:03:09)\n"},
		{domain.ChannelFacebook, "bob.smith", "Sending message to bob.smith via Facebook: hello (2024-05-17 14:03:09)\n"},
		{domain.ChannelInstagram, "carol_ig", "Sending message to carol_ig via Instagram: hello (2024-05-17 14:03:09)\n"},
		{domain.ChannelEmail, "dave@example.com", "Sending message to dave@example.com via Email: hello (2024-05-17 14:03:09)\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			var out bytes.Buffer
			ch, err := newTestFactory(&out).New(tt.kind, tt.dest)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if ch.Kind() != tt.kind {
				t.Errorf("Kind() = %q, want %q", ch.Kind(), tt.kind)
			}
			if ch.Destination() != tt.dest {
				t.Errorf("Destination() = %q, want %q", ch.Destination(), tt.dest)
			}
			if ch.Name() != NetworkName(tt.kind) {
				t.Errorf("Name() = %q, want %q", ch.Name(), NetworkName(tt.kind))
			}
			if err := ch.Send(context.Background(), msg); err != nil {
				t.Fatalf("Send: %v", err)
			}
			if out.String() != tt.want {
				t.Fatalf("got %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestSend_TelegramVideo(t *testing.T) {
	var out bytes.Buffer
	ch := NewTelegram(Config{Destination: "alice", Out: &out})
	msg := message.NewVideo(message.Header{Text: "look", SentAt: sentAt}, message.Attachment{File: "a.mp4", Format: "mp4"}, 125)

	if err := ch.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send: %v", err)
	}
	want := "Sending message to @alice via Telegram: Video: a.mp4 (mp4), Duration: 125 seconds (2024-05-17 14:03:09)\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestSend_CustomTimeLayout(t *testing.T) {
	var out bytes.Buffer
	f := NewFactory(FactoryConfig{Out: &out, TimeLayout: "02/01/2006 15:04:05", Logger: testLogger()})
	ch, _ := f.New(domain.ChannelEmail, "x@y.z")
	_ = ch.Send(context.Background(), message.NewText(message.Header{Text: "hi", SentAt: sentAt}))

	if !strings.HasSuffix(out.String(), "(17/05/2024 14:03:09)\n") {
		t.Fatalf("unexpected timestamp rendering: %q", out.String())
	}
}

func TestSend_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	ch := NewWhatsApp(Config{Destination: "1", Out: &out})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ch.Send(ctx, message.NewText(message.Header{Text: "hi", SentAt: sentAt}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestSend_WriteError(t *testing.T) {
	ch := NewFacebook(Config{Destination: "bob", Out: failingWriter{}})
	err := ch.Send(context.Background(), message.NewText(message.Header{Text: "hi", SentAt: sentAt}))
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}

func TestFactory_Unknown(t *testing.T) {
	_, err := newTestFactory(io.Discard).New("myspace", "tom")
	if !errors.Is(err, ErrUnknownChannel) {
		t.Fatalf("expected ErrUnknownChannel, got %v", err)
	}
}

func TestFactory_RegisterConstructor(t *testing.T) {
	var out bytes.Buffer
	f := newTestFactory(&out)
	var gotDest string
	f.RegisterConstructor(domain.ChannelEmail, func(cfg Config) domain.Channel {
		gotDest = cfg.Destination
		return NewInstagram(cfg)
	})

	ch, err := f.New(domain.ChannelEmail, "someone")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if gotDest != "someone" {
		t.Errorf("constructor got destination %q", gotDest)
	}
	if ch.Kind() != domain.ChannelInstagram {
		t.Errorf("expected replaced constructor to be used, got %q", ch.Kind())
	}
}

func TestCatalog_Order(t *testing.T) {
	want := []string{"WhatsApp", "Telegram", "Facebook", "Instagram", "Email"}
	got := Catalog()
	if len(got) != len(want) {
		t.Fatalf("expected %d channels, got %d", len(want), len(got))
	}
	for i, kind := range got {
		if NetworkName(kind) != want[i] {
			t.Errorf("position %d: got %s, want %s", i+1, NetworkName(kind), want[i])
		}
	}
}
