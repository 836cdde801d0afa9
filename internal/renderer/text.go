package renderer

import (
	"github.com/bear-block/chatx/internal/message"
)

// Text renders a plain text message. Deleted messages show a muted
// placeholder instead of their former content.
func Text(msg message.Message, ctx Context) string {
	if msg.IsDeleted {
		return compose(msg, mutedStyle(ctx).Italic(true).Render("Message deleted"), ctx)
	}
	return compose(msg, withMeta(msg, msg.Text, ctx), ctx)
}
