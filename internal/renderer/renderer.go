package renderer

import (
	"github.com/bear-block/chatx/internal/decorator"
	"github.com/bear-block/chatx/internal/message"
	"github.com/bear-block/chatx/internal/ui"
)

// Context carries everything a renderer needs beyond the message itself:
// the display settings, the identity of the viewing user, and the press
// handlers the host wants wired into the produced fragments.
type Context struct {
	ui.Context

	CurrentUserID string
	Actions       decorator.Actions

	// OnMediaPress fires when the host activates an attachment of the
	// rendered message, for example to open a full-screen viewer.
	OnMediaPress func(messageID string, attachment message.Attachment, index int)
	// OnDownload fires when the host requests a file attachment download.
	OnDownload func(messageID string, attachment message.Attachment)
}

// IsCurrentUser reports whether the message was sent by the viewing user.
func (c Context) IsCurrentUser(msg message.Message) bool {
	return c.CurrentUserID != "" && msg.User.ID == c.CurrentUserID
}

// RenderFunc produces the terminal representation of a single message.
// Implementations must be pure with respect to the message: they never
// mutate it and never invoke callbacks while rendering.
type RenderFunc func(msg message.Message, ctx Context) string
