package renderer

import (
	"strings"

	"github.com/bear-block/chatx/internal/message"
)

// Gif renders animated image content as a framed preview carrying a GIF tag.
// It accepts attachments declared as GIFs as well as image attachments whose
// MIME type or filename reveals GIF content. Messages with neither render
// nothing.
func Gif(msg message.Message, ctx Context) string {
	att, ok := gifAttachment(msg)
	if !ok {
		return ""
	}

	box := FitBox(att.Width, att.Height, maxMediaWidth(ctx.Width), MaxImageHeight)

	lines := []string{mediaFrame("GIF", box, ctx)}
	if bar := progressBar(att, ctx); bar != "" {
		lines = append(lines, bar)
	}
	if msg.Text != "" {
		lines = append(lines, msg.Text)
	}
	if meta := metaLine(msg, ctx); meta != "" {
		lines = append(lines, meta)
	}
	return compose(msg, strings.Join(lines, "\n"), ctx)
}

func gifAttachment(msg message.Message) (message.Attachment, bool) {
	if att, ok := msg.FirstMediaOfKind(message.MediaGif); ok {
		return att, true
	}
	for _, att := range msg.Media {
		if att.IsGif() {
			return att, true
		}
	}
	if att, ok := msg.FirstMediaOfKind(message.MediaImage); ok {
		return att, true
	}
	return message.Attachment{}, false
}
