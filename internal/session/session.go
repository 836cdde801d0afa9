// Package session holds the client-side state of one open chat: the message
// list, optimistic local updates, and the bridge to the host's data layer.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bear-block/chatx/internal/logger"
	"github.com/bear-block/chatx/internal/message"
	"github.com/bear-block/chatx/pkg/errors"
)

// Callbacks connects a session to the host application's data layer. Every
// callback is optional; a nil callback turns the corresponding operation
// into a local-only change. All callbacks receive the caller's context so
// hosts can time out or cancel slow backends.
type Callbacks struct {
	SendMessage      func(ctx context.Context, msg message.Message) error
	EditMessage      func(ctx context.Context, messageID, text string) error
	DeleteMessage    func(ctx context.Context, messageID string) error
	AddReaction      func(ctx context.Context, messageID, emoji string) error
	RemoveReaction   func(ctx context.Context, messageID, emoji string) error
	LoadMessages     func(ctx context.Context, chatID string) ([]message.Message, error)
	LoadMoreMessages func(ctx context.Context, chatID, beforeID string) ([]message.Message, error)
	SearchMessages   func(ctx context.Context, chatID, query string) ([]message.Message, error)
	OnTypingChange   func(ctx context.Context, typing bool)
}

// Session is the stateful core behind a chat view. Messages are kept newest
// first. Mutating operations apply optimistically, then settle or roll back
// when the host callback reports the outcome. Safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	chatID    string
	user      message.User
	messages  []message.Message
	hasMore   bool
	typing    bool
	callbacks Callbacks
	log       *logger.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger for tracing state transitions.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) { s.log = log.WithComponent("session") }
}

// New creates a session for one chat on behalf of the given user.
func New(chatID string, user message.User, callbacks Callbacks, opts ...Option) *Session {
	s := &Session{
		chatID:    chatID,
		user:      user,
		callbacks: callbacks,
		hasMore:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChatID returns the chat this session is bound to.
func (s *Session) ChatID() string { return s.chatID }

// User returns the user this session acts as.
func (s *Session) User() message.User { return s.user }

// Messages returns a snapshot of the message list, newest first.
func (s *Session) Messages() []message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]message.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// HasMore reports whether older pages may still be loaded.
func (s *Session) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

// Get returns the message with the given id.
func (s *Session) Get(id string) (message.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.ID == id {
			return m, true
		}
	}
	return message.Message{}, false
}

// SendText composes and sends a plain text message.
func (s *Session) SendText(ctx context.Context, text string) (message.Message, error) {
	return s.Send(ctx, message.Message{Kind: message.KindText, Text: text})
}

// Send delivers a draft message. The draft is stamped with an id, the chat,
// the sending user and a timestamp, inserted at the head of the list in the
// sending state, and settles to sent or failed once the host callback
// returns. The stamped message is returned either way so callers can track
// it by id.
func (s *Session) Send(ctx context.Context, draft message.Message) (message.Message, error) {
	msg := draft
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.ChatID = s.chatID
	msg.User = s.user
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	if msg.Kind == "" {
		msg.Kind = message.KindText
	}
	msg.Status = message.StatusSending

	s.mu.Lock()
	s.messages = append([]message.Message{msg}, s.messages...)
	s.mu.Unlock()

	if s.callbacks.SendMessage == nil {
		s.setStatus(msg.ID, message.StatusSent)
		return s.mustGet(msg.ID), nil
	}

	if err := s.callbacks.SendMessage(ctx, msg); err != nil {
		s.setStatus(msg.ID, message.StatusFailed)
		s.log.WithFields(map[string]any{"message_id": msg.ID}).Error(err, "send failed")
		return s.mustGet(msg.ID), errors.NewCallbackError("send", msg.ID, err)
	}

	s.setStatus(msg.ID, message.StatusSent)
	return s.mustGet(msg.ID), nil
}

// Resend retries a failed message, moving it back through the sending state.
func (s *Session) Resend(ctx context.Context, id string) (message.Message, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return message.Message{}, errors.NewCallbackError("resend", id, errNotFound)
	}
	msg := s.messages[idx].WithStatus(message.StatusSending)
	s.messages[idx] = msg
	s.mu.Unlock()

	if s.callbacks.SendMessage != nil {
		if err := s.callbacks.SendMessage(ctx, msg); err != nil {
			s.setStatus(id, message.StatusFailed)
			return s.mustGet(id), errors.NewCallbackError("resend", id, err)
		}
	}
	s.setStatus(id, message.StatusSent)
	return s.mustGet(id), nil
}

// Edit replaces a message's text. The change applies immediately and rolls
// back if the host callback fails.
func (s *Session) Edit(ctx context.Context, id, text string) error {
	prev, ok := s.replace(id, func(m message.Message) message.Message {
		return m.WithText(text).MarkEdited(time.Now())
	})
	if !ok {
		return errors.NewCallbackError("edit", id, errNotFound)
	}

	if s.callbacks.EditMessage == nil {
		return nil
	}
	if err := s.callbacks.EditMessage(ctx, id, text); err != nil {
		s.restore(prev)
		return errors.NewCallbackError("edit", id, err)
	}
	return nil
}

// Delete removes a message from the visible list. The removal applies
// immediately and rolls back if the host callback fails, reinserting the
// message at its previous position.
func (s *Session) Delete(ctx context.Context, id string) error {
	prev, idx, ok := s.remove(id)
	if !ok {
		return errors.NewCallbackError("delete", id, errNotFound)
	}

	if s.callbacks.DeleteMessage == nil {
		return nil
	}
	if err := s.callbacks.DeleteMessage(ctx, id); err != nil {
		s.reinsert(prev, idx)
		return errors.NewCallbackError("delete", id, err)
	}
	return nil
}

// React adds the session user's reaction. The change applies immediately
// and rolls back if the host callback fails.
func (s *Session) React(ctx context.Context, id, emoji string) error {
	prev, ok := s.replace(id, func(m message.Message) message.Message {
		return m.AddReaction(emoji, s.user.ID)
	})
	if !ok {
		return errors.NewCallbackError("react", id, errNotFound)
	}

	if s.callbacks.AddReaction == nil {
		return nil
	}
	if err := s.callbacks.AddReaction(ctx, id, emoji); err != nil {
		s.restore(prev)
		return errors.NewCallbackError("react", id, err)
	}
	return nil
}

// Unreact removes the session user's reaction. The change applies
// immediately and rolls back if the host callback fails.
func (s *Session) Unreact(ctx context.Context, id, emoji string) error {
	prev, ok := s.replace(id, func(m message.Message) message.Message {
		return m.RemoveReaction(emoji, s.user.ID)
	})
	if !ok {
		return errors.NewCallbackError("unreact", id, errNotFound)
	}

	if s.callbacks.RemoveReaction == nil {
		return nil
	}
	if err := s.callbacks.RemoveReaction(ctx, id, emoji); err != nil {
		s.restore(prev)
		return errors.NewCallbackError("unreact", id, err)
	}
	return nil
}

// Load fetches the initial page and replaces the message list with it.
func (s *Session) Load(ctx context.Context) error {
	if s.callbacks.LoadMessages == nil {
		return nil
	}
	msgs, err := s.callbacks.LoadMessages(ctx, s.chatID)
	if err != nil {
		return errors.NewCallbackError("load", "", err)
	}

	s.mu.Lock()
	s.messages = msgs
	s.hasMore = len(msgs) > 0
	s.mu.Unlock()
	return nil
}

// LoadMore fetches the page older than the current oldest message and
// appends it. An empty page marks the history as exhausted.
func (s *Session) LoadMore(ctx context.Context) error {
	if s.callbacks.LoadMoreMessages == nil {
		return nil
	}

	s.mu.Lock()
	if !s.hasMore {
		s.mu.Unlock()
		return nil
	}
	beforeID := ""
	if len(s.messages) > 0 {
		beforeID = s.messages[len(s.messages)-1].ID
	}
	s.mu.Unlock()

	msgs, err := s.callbacks.LoadMoreMessages(ctx, s.chatID, beforeID)
	if err != nil {
		return errors.NewCallbackError("load_more", "", err)
	}

	s.mu.Lock()
	s.messages = append(s.messages, msgs...)
	if len(msgs) == 0 {
		s.hasMore = false
	}
	s.mu.Unlock()
	return nil
}

// Search asks the host for messages matching the query. Results do not
// replace the session's message list.
func (s *Session) Search(ctx context.Context, query string) ([]message.Message, error) {
	if s.callbacks.SearchMessages == nil {
		return nil, nil
	}
	msgs, err := s.callbacks.SearchMessages(ctx, s.chatID, query)
	if err != nil {
		return nil, errors.NewCallbackError("search", "", err)
	}
	return msgs, nil
}

// SetTyping reports the session user's typing state to the host. Repeated
// calls with the same state are suppressed.
func (s *Session) SetTyping(ctx context.Context, typing bool) {
	s.mu.Lock()
	if s.typing == typing {
		s.mu.Unlock()
		return
	}
	s.typing = typing
	s.mu.Unlock()

	if s.callbacks.OnTypingChange != nil {
		s.callbacks.OnTypingChange(ctx, typing)
	}
}

// Apply merges a message pushed by the host: existing ids are updated in
// place, new ones are inserted at the head.
func (s *Session) Apply(msg message.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexLocked(msg.ID); idx >= 0 {
		s.messages[idx] = msg
		return
	}
	s.messages = append([]message.Message{msg}, s.messages...)
}

var errNotFound = errors.NewValidationError("message_id", "message not found", nil)

// replace swaps a message for fn(message) and returns the previous value
// for rollback.
func (s *Session) replace(id string, fn func(message.Message) message.Message) (message.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return message.Message{}, false
	}
	prev := s.messages[idx]
	s.messages[idx] = fn(prev)
	return prev, true
}

func (s *Session) remove(id string) (message.Message, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return message.Message{}, 0, false
	}
	prev := s.messages[idx]
	s.messages = append(s.messages[:idx], s.messages[idx+1:]...)
	return prev, idx, true
}

func (s *Session) reinsert(prev message.Message, idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx > len(s.messages) {
		idx = len(s.messages)
	}
	s.messages = append(s.messages[:idx], append([]message.Message{prev}, s.messages[idx:]...)...)
}

func (s *Session) restore(prev message.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(prev.ID); idx >= 0 {
		s.messages[idx] = prev
	}
}

func (s *Session) setStatus(id string, status message.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		s.messages[idx] = s.messages[idx].WithStatus(status)
	}
}

func (s *Session) mustGet(id string) message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.messages[idx]
	}
	return message.Message{}
}

func (s *Session) indexLocked(id string) int {
	for i, m := range s.messages {
		if m.ID == id {
			return i
		}
	}
	return -1
}
