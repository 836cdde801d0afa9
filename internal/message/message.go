package message

import (
	"time"
)

// Kind is the discriminant tag on a Message selecting which renderer applies.
// The built-in set is closed; any other value is a custom kind resolved
// through the renderer registry.
type Kind string

const (
	KindText   Kind = "text"
	KindImage  Kind = "image"
	KindVideo  Kind = "video"
	KindAudio  Kind = "audio"
	KindFile   Kind = "file"
	KindGif    Kind = "gif"
	KindSystem Kind = "system"
)

// Builtin reports whether the kind belongs to the closed built-in set.
func (k Kind) Builtin() bool {
	switch k {
	case KindText, KindImage, KindVideo, KindAudio, KindFile, KindGif, KindSystem:
		return true
	}
	return false
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Status represents the delivery state of a message from the sender's view.
type Status string

const (
	StatusSending   Status = "sending"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
	StatusFailed    Status = "failed"
)

// User identifies a message sender.
type User struct {
	ID        string
	Name      string
	Username  string
	AvatarURL string
	IsOnline  bool
	LastSeen  time.Time
}

// Initials returns up to two uppercase initials for avatar rendering.
func (u User) Initials() string {
	initials := ""
	for _, word := range splitWords(u.Name) {
		for _, r := range word {
			initials += string(toUpper(r))
			break
		}
		if len([]rune(initials)) == 2 {
			break
		}
	}
	if initials == "" && u.ID != "" {
		for _, r := range u.ID {
			initials = string(toUpper(r))
			break
		}
	}
	return initials
}

func splitWords(s string) []string {
	var words []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// Message is the central entity flowing through the toolkit. All mutations go
// through the With*/Mark*/Pin copy helpers; callers never mutate a Message in
// place once it has entered session state.
type Message struct {
	ID        string
	ChatID    string
	Kind      Kind
	Text      string
	User      User
	Timestamp time.Time

	Status Status
	IsRead bool

	IsEdited  bool
	EditedAt  *time.Time
	IsDeleted bool
	DeletedAt *time.Time
	IsPinned  bool
	PinnedAt  *time.Time

	IsForwarded   bool
	ForwardedFrom string

	Media     []Attachment
	Reactions []Reaction

	// ReplyTo references the parent message id. ReplyMessage is an optional
	// denormalized snapshot of that parent for offline or partial-data
	// display; when present its ID must equal ReplyTo.
	ReplyTo      string
	ReplyMessage *Message

	// System carries payload for KindSystem messages.
	System *SystemData

	// Custom is an open payload bag for kind-specific or experimental data
	// (polls, stickers, location, contact cards).
	Custom map[string]any
}

// WithText returns a copy with replaced text.
func (m Message) WithText(text string) Message {
	m.Text = text
	return m
}

// WithStatus returns a copy with the given delivery status.
func (m Message) WithStatus(status Status) Message {
	m.Status = status
	return m
}

// MarkEdited returns a copy flagged as edited at the given time.
func (m Message) MarkEdited(at time.Time) Message {
	m.IsEdited = true
	m.EditedAt = &at
	return m
}

// MarkDeleted returns a copy flagged as deleted at the given time.
func (m Message) MarkDeleted(at time.Time) Message {
	m.IsDeleted = true
	m.DeletedAt = &at
	return m
}

// Pin returns a copy pinned at the given time. IsPinned and PinnedAt are
// always set together.
func (m Message) Pin(at time.Time) Message {
	m.IsPinned = true
	m.PinnedAt = &at
	return m
}

// Unpin returns a copy with pin state cleared.
func (m Message) Unpin() Message {
	m.IsPinned = false
	m.PinnedAt = nil
	return m
}

// ReplyConsistent reports whether the reply linkage invariant holds: the
// snapshot may be absent, but when present its id must match ReplyTo.
func (m Message) ReplyConsistent() bool {
	if m.ReplyMessage == nil {
		return true
	}
	return m.ReplyTo != "" && m.ReplyMessage.ID == m.ReplyTo
}

// PinConsistent reports whether IsPinned and PinnedAt are set together.
func (m Message) PinConsistent() bool {
	return m.IsPinned == (m.PinnedAt != nil)
}
