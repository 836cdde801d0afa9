package renderer

import (
	"strings"

	"github.com/bear-block/chatx/internal/message"
)

// Audio renders the first audio attachment as a play control with a duration
// readout and a small level sketch. Messages without an audio attachment
// render nothing.
func Audio(msg message.Message, ctx Context) string {
	att, ok := msg.FirstMediaOfKind(message.MediaAudio)
	if !ok {
		return ""
	}

	play, wave := "▶", "▂▃▅▃▂▄▆▄▂"
	if !ctx.Unicode {
		play, wave = ">", "~~~~~~~~~"
	}

	lines := []string{play + " " + wave + " " + FormatDuration(att.Duration)}
	if bar := progressBar(att, ctx); bar != "" {
		lines = append(lines, bar)
	}
	lines = append(lines, mutedStyle(ctx).Render(FormatFileSize(att.Size)))

	if meta := metaLine(msg, ctx); meta != "" {
		lines = append(lines, meta)
	}
	return compose(msg, strings.Join(lines, "\n"), ctx)
}
