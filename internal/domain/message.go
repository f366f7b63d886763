package domain

import "time"

// MessageKind identifies a message variant.
type MessageKind string

const (
	KindText  MessageKind = "text"
	KindVideo MessageKind = "video"
	KindPhoto MessageKind = "photo"
	KindFile  MessageKind = "file"
)

// Message is an immutable piece of content handed to a Channel for delivery.
type Message interface {
	Kind() MessageKind
	Text() string
	SentAt() time.Time
	// Content renders the human-readable body. It must be a pure function of the message fields.
	Content() string
}
