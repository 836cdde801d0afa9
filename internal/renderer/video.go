package renderer

import (
	"strings"

	"github.com/bear-block/chatx/internal/message"
)

// Video renders the first video attachment as a framed preview with a play
// marker, plus a size and duration line. Messages without a video attachment
// render nothing.
func Video(msg message.Message, ctx Context) string {
	att, ok := msg.FirstMediaOfKind(message.MediaVideo)
	if !ok {
		return ""
	}

	box := FitBox(att.Width, att.Height, maxMediaWidth(ctx.Width), MaxVideoHeight)

	play := "▶"
	if !ctx.Unicode {
		play = ">"
	}
	label := play + " " + FormatDuration(att.Duration)

	lines := []string{mediaFrame(label, box, ctx)}
	if bar := progressBar(att, ctx); bar != "" {
		lines = append(lines, bar)
	}

	info := FormatFileSize(att.Size)
	if att.Filename != "" {
		info = att.Filename + "  " + info
	}
	lines = append(lines, mutedStyle(ctx).Render(info))

	if msg.Text != "" {
		lines = append(lines, msg.Text)
	}
	if meta := metaLine(msg, ctx); meta != "" {
		lines = append(lines, meta)
	}
	return compose(msg, strings.Join(lines, "\n"), ctx)
}
