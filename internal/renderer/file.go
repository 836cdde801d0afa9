package renderer

import (
	"strings"

	"github.com/bear-block/chatx/internal/message"
)

// File renders the first file attachment as a name and size row. Messages
// without a file attachment render nothing.
func File(msg message.Message, ctx Context) string {
	att, ok := msg.FirstMediaOfKind(message.MediaFile)
	if !ok {
		return ""
	}

	icon := "📄"
	if !ctx.Unicode {
		icon = "[file]"
	}
	name := att.Filename
	if name == "" {
		name = "file"
	}

	lines := []string{icon + " " + name}
	if bar := progressBar(att, ctx); bar != "" {
		lines = append(lines, bar)
	}
	lines = append(lines, mutedStyle(ctx).Render(FormatFileSize(att.Size)))

	if meta := metaLine(msg, ctx); meta != "" {
		lines = append(lines, meta)
	}
	return compose(msg, strings.Join(lines, "\n"), ctx)
}
