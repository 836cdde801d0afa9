package tui

import (
	"github.com/bear-block/chatx/internal/message"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewChat ViewMode = iota
	ViewSearch
	ViewMedia
)

// MessagesLoadedMsg carries the initial history page.
type MessagesLoadedMsg struct {
	Messages []message.Message
}

// MoreLoadedMsg indicates an older page was appended.
type MoreLoadedMsg struct {
	Messages []message.Message
	HasMore  bool
}

// LoadErrorMsg indicates history loading failed.
type LoadErrorMsg struct {
	Err error
}

// MessageSentMsg indicates a send settled, successfully or not.
type MessageSentMsg struct {
	Message message.Message
	Err     error
}

// ActionDoneMsg indicates an edit, delete or reaction settled.
type ActionDoneMsg struct {
	Op        string
	MessageID string
	Err       error
}

// SearchResultsMsg carries search hits for a query.
type SearchResultsMsg struct {
	Query   string
	Results []message.Message
	Err     error
}

// IncomingMsg delivers a message pushed by the host.
type IncomingMsg struct {
	Message message.Message
}

// TypingMsg reports another participant's typing state.
type TypingMsg struct {
	User   message.User
	Typing bool
}

// dismissErrorMsg clears the error banner.
type dismissErrorMsg struct{}
