// Package decorator implements the small positioned fragments attached to a
// message bubble's edges: reply preview, pin marker, delivery status, and the
// reaction bar. Every decorator is a pure function from message-derived data
// to a fragment; inapplicable inputs produce nothing rather than an error.
package decorator

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/bear-block/chatx/internal/message"
	"github.com/bear-block/chatx/internal/ui"
)

// Anchor positions a decorator relative to the bubble.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorBottom
	AnchorLeft
	AnchorRight
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorTop:
		return "top"
	case AnchorBottom:
		return "bottom"
	case AnchorLeft:
		return "left"
	case AnchorRight:
		return "right"
	default:
		return "unknown"
	}
}

// Decorator is an ephemeral, derived-only value: a rendered fragment at an
// anchor position. Press, when non-nil, is the gesture handler the host UI
// invokes when the fragment is activated; it is never called during the
// render pass itself.
type Decorator struct {
	Anchor   Anchor
	Fragment string
	Press    func()
}

// Actions carries the optional gesture callbacks wired through to decorator
// fragments. Any nil callback is a silent no-op.
type Actions struct {
	OnPress         func(messageID string)
	OnLongPress     func(messageID string)
	OnReplyPress    func(messageID string)
	OnReactionPress func(messageID, emoji string)
}

// ReplyPreview renders the parent-message preview shown above a reply.
// It renders nothing when the message has no reply target. An absent snapshot
// displays a literal placeholder so partial data still produces output.
func ReplyPreview(replyTo string, snapshot *message.Message, onPress func(messageID string), ctx ui.Context) (Decorator, bool) {
	if replyTo == "" {
		return Decorator{}, false
	}

	text := "Message not found"
	if snapshot != nil && snapshot.Text != "" {
		text = snapshot.Text
	}

	bar := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Primary.Base).Render("▎")
	if !ctx.Unicode {
		bar = lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Primary.Base).Render("|")
	}
	label := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Neutral.Base).Faint(true).Render("Replying to ")
	body := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Surface.OnBase).Italic(true).Render(text)

	var press func()
	if onPress != nil {
		target := replyTo
		press = func() { onPress(target) }
	}

	return Decorator{
		Anchor:   AnchorTop,
		Fragment: bar + label + body,
		Press:    press,
	}, true
}

// PinMarker renders the pinned-message marker. Nothing when not pinned.
func PinMarker(isPinned bool, ctx ui.Context) (Decorator, bool) {
	if !isPinned {
		return Decorator{}, false
	}

	icon := "📌"
	if !ctx.Unicode {
		icon = "[pin]"
	}
	return Decorator{
		Anchor:   AnchorLeft,
		Fragment: lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Warning.Base).Render(icon),
	}, true
}

// DeliveryStatus renders the sender-side delivery glyph. Status is only
// meaningful for the current user's own messages; everything else renders
// nothing. Delivered and read share a glyph and differ only in colour.
func DeliveryStatus(status message.Status, isCurrentUser bool, ctx ui.Context) (Decorator, bool) {
	if !isCurrentUser {
		return Decorator{}, false
	}

	glyph := statusGlyph(status, ctx.Unicode)
	if glyph == "" {
		return Decorator{}, false
	}

	return Decorator{
		Anchor:   AnchorRight,
		Fragment: lipgloss.NewStyle().Foreground(ctx.Theme.StatusColor(status)).Render(glyph),
	}, true
}

func statusGlyph(status message.Status, unicode bool) string {
	if unicode {
		switch status {
		case message.StatusSending:
			return "⏳"
		case message.StatusSent:
			return "✓"
		case message.StatusDelivered, message.StatusRead:
			return "✓✓"
		case message.StatusFailed:
			return "✗"
		}
		return ""
	}

	switch status {
	case message.StatusSending:
		return "..."
	case message.StatusSent:
		return "v"
	case message.StatusDelivered, message.StatusRead:
		return "vv"
	case message.StatusFailed:
		return "x"
	}
	return ""
}

// Reactions renders one pressable pill per reaction, all anchored at the
// bubble's bottom edge. An empty reaction list renders nothing.
func Reactions(messageID string, reactions []message.Reaction, onPress func(messageID, emoji string), ctx ui.Context) []Decorator {
	if len(reactions) == 0 {
		return nil
	}

	pill := lipgloss.NewStyle().
		Background(ctx.Theme.Palette.Surface.Muted).
		Foreground(ctx.Theme.Palette.Surface.OnBase).
		Padding(0, 1)

	out := make([]Decorator, 0, len(reactions))
	for _, r := range reactions {
		var press func()
		if onPress != nil {
			emoji := r.Emoji
			press = func() { onPress(messageID, emoji) }
		}
		out = append(out, Decorator{
			Anchor:   AnchorBottom,
			Fragment: pill.Render(r.Emoji + " " + strconv.Itoa(r.Count)),
			Press:    press,
		})
	}
	return out
}

// Build assembles the standard decorator set for a message: reply preview on
// top, pin marker on the left, delivery status on the right for the current
// user's own messages, reactions at the bottom. Every per-kind renderer calls
// this identically.
func Build(msg message.Message, currentUserID string, actions Actions, ctx ui.Context) []Decorator {
	isCurrentUser := currentUserID != "" && msg.User.ID == currentUserID

	var out []Decorator
	if d, ok := ReplyPreview(msg.ReplyTo, msg.ReplyMessage, actions.OnReplyPress, ctx); ok {
		out = append(out, d)
	}
	if d, ok := PinMarker(msg.IsPinned, ctx); ok {
		out = append(out, d)
	}
	if d, ok := DeliveryStatus(msg.Status, isCurrentUser, ctx); ok {
		out = append(out, d)
	}
	out = append(out, Reactions(msg.ID, msg.Reactions, actions.OnReactionPress, ctx)...)
	return out
}
