package renderer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bear-block/chatx/internal/bubble"
	"github.com/bear-block/chatx/internal/decorator"
	"github.com/bear-block/chatx/internal/message"
)

// compose wraps rendered content in a message bubble together with the
// message's decorators. Every built-in renderer funnels through here so that
// reply previews, pin markers, delivery status and reactions behave the same
// for all kinds.
func compose(msg message.Message, content string, ctx Context) string {
	b := bubble.Bubble{
		IsCurrentUser: ctx.IsCurrentUser(msg),
		Variant:       pinnedVariant(msg),
		ShowTail:      true,
		Decorators:    decorator.Build(msg, ctx.CurrentUserID, ctx.Actions, ctx.Context),
		Content:       content,
	}
	return b.Render(ctx.Context)
}

// pinnedVariant picks the bubble variant a kind renderer uses on its own:
// pinned messages get the pinned treatment, everything else the default.
func pinnedVariant(msg message.Message) bubble.Variant {
	if msg.IsPinned {
		return bubble.VariantPinned
	}
	return bubble.VariantDefault
}

// withMeta appends the forwarded header above and the edited/timestamp line
// below the body, subject to the display toggles.
func withMeta(msg message.Message, body string, ctx Context) string {
	lines := make([]string, 0, 3)

	if msg.IsForwarded {
		from := "Forwarded"
		if msg.ForwardedFrom != "" {
			from = "Forwarded from " + msg.ForwardedFrom
		}
		lines = append(lines, mutedStyle(ctx).Italic(true).Render(from))
	}

	lines = append(lines, body)

	meta := metaLine(msg, ctx)
	if meta != "" {
		lines = append(lines, meta)
	}

	return strings.Join(lines, "\n")
}

func metaLine(msg message.Message, ctx Context) string {
	parts := make([]string, 0, 2)
	if msg.IsEdited {
		parts = append(parts, "(edited)")
	}
	if ctx.ShowTimestamps && !msg.Timestamp.IsZero() {
		parts = append(parts, msg.Timestamp.Format("15:04"))
	}
	if len(parts) == 0 {
		return ""
	}
	return mutedStyle(ctx).Render(strings.Join(parts, " "))
}

func mutedStyle(ctx Context) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Neutral.Muted)
}
