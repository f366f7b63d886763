// Package message implements the message variants (text, video, photo, file)
// delivered through channels.
package message

import (
	"errors"
	"fmt"
	"time"

	"chatbot/internal/domain"
)

// ErrUnknownKind is returned when a message kind has no variant.
var ErrUnknownKind = errors.New("unknown message kind")

// Header holds the fields every message carries.
type Header struct {
	Text   string
	SentAt time.Time
}

// Attachment describes the media referenced by photo, video and file messages.
type Attachment struct {
	File   string
	Format string
}

type base struct {
	text   string
	sentAt time.Time
}

func newBase(h Header) base { return base{text: h.Text, sentAt: h.SentAt} }

func (b base) Text() string      { return b.text }
func (b base) SentAt() time.Time { return b.sentAt }

// Text is a plain text message.
type Text struct {
	base
}

// NewText creates a plain text message.
func NewText(h Header) Text { return Text{base: newBase(h)} }

func (Text) Kind() domain.MessageKind { return domain.KindText }
func (t Text) Content() string        { return t.text }

// Video is a video attachment with a duration in seconds.
type Video struct {
	base
	attachment      Attachment
	durationSeconds int
}

// NewVideo creates a video message lasting durationSeconds.
func NewVideo(h Header, a Attachment, durationSeconds int) Video {
	return Video{base: newBase(h), attachment: a, durationSeconds: durationSeconds}
}

func (Video) Kind() domain.MessageKind { return domain.KindVideo }
func (v Video) Attachment() Attachment { return v.attachment }
func (v Video) DurationSeconds() int   { return v.durationSeconds }

func (v Video) Content() string {
	return fmt.Sprintf("Video: %s (%s), Duration: %d seconds", v.attachment.File, v.attachment.Format, v.durationSeconds)
}

// Photo is an image attachment.
type Photo struct {
	base
	attachment Attachment
}

// NewPhoto creates a photo message.
func NewPhoto(h Header, a Attachment) Photo { return Photo{base: newBase(h), attachment: a} }

func (Photo) Kind() domain.MessageKind { return domain.KindPhoto }
func (p Photo) Attachment() Attachment { return p.attachment }

func (p Photo) Content() string {
	return fmt.Sprintf("Photo: %s (%s)", p.attachment.File, p.attachment.Format)
}

// File is a generic document attachment.
type File struct {
	base
	attachment Attachment
}

// NewFile creates a file message.
func NewFile(h Header, a Attachment) File { return File{base: newBase(h), attachment: a} }

func (File) Kind() domain.MessageKind { return domain.KindFile }
func (f File) Attachment() Attachment { return f.attachment }

func (f File) Content() string {
	return fmt.Sprintf("File: %s (%s)", f.attachment.File, f.attachment.Format)
}

// Fields lists the variant-specific inputs a kind needs beyond the header.
type Fields struct {
	Attachment bool // file and format
	Duration   bool // video length
}

// FieldsFor reports which inputs must be collected for kind.
func FieldsFor(kind domain.MessageKind) (Fields, error) {
	switch kind {
	case domain.KindText:
		return Fields{}, nil
	case domain.KindVideo:
		return Fields{Attachment: true, Duration: true}, nil
	case domain.KindPhoto, domain.KindFile:
		return Fields{Attachment: true}, nil
	default:
		return Fields{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Build constructs the variant for kind. durationSeconds is only used by video.
func Build(kind domain.MessageKind, h Header, a Attachment, durationSeconds int) (domain.Message, error) {
	switch kind {
	case domain.KindText:
		return NewText(h), nil
	case domain.KindVideo:
		return NewVideo(h, a, durationSeconds), nil
	case domain.KindPhoto:
		return NewPhoto(h, a), nil
	case domain.KindFile:
		return NewFile(h, a), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Catalog returns the message kinds in menu order.
func Catalog() []domain.MessageKind {
	return []domain.MessageKind{domain.KindText, domain.KindVideo, domain.KindPhoto, domain.KindFile}
}

var (
	_ domain.Message = Text{}
	_ domain.Message = Video{}
	_ domain.Message = Photo{}
	_ domain.Message = File{}
)
