package renderer

import (
	"github.com/bear-block/chatx/internal/bubble"
	"github.com/bear-block/chatx/internal/message"
)

// System renders a system event line inside the system bubble variant. The
// event description comes from the structured payload when present and falls
// back to the message text.
func System(msg message.Message, ctx Context) string {
	body := msg.Text
	if msg.System != nil {
		body = msg.System.Describe(msg.Text)
	}

	b := bubble.Bubble{
		Variant: bubble.VariantSystem,
		Content: body,
	}
	return b.Render(ctx.Context)
}
