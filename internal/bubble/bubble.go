// Package bubble composes a message's primary content and its decorators
// into one visual unit. It is a pure layout contract: no business logic, no
// failure modes. A bubble with zero decorators and empty content still
// renders.
package bubble

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bear-block/chatx/internal/decorator"
	"github.com/bear-block/chatx/internal/message"
	"github.com/bear-block/chatx/internal/ui"
)

// Variant selects the bubble's visual emphasis.
type Variant int

const (
	VariantDefault Variant = iota
	VariantCompact
	VariantHighlighted
	VariantPinned
	VariantSystem
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantCompact:
		return "compact"
	case VariantHighlighted:
		return "highlighted"
	case VariantPinned:
		return "pinned"
	case VariantSystem:
		return "system"
	default:
		return "default"
	}
}

// VariantFor derives the bubble variant from message flags: system kind wins,
// then pinned, then a custom "highlighted" payload flag, then default.
func VariantFor(msg message.Message) Variant {
	if msg.Kind == message.KindSystem {
		return VariantSystem
	}
	if msg.IsPinned {
		return VariantPinned
	}
	if flagged, ok := msg.Custom["highlighted"].(bool); ok && flagged {
		return VariantHighlighted
	}
	return VariantDefault
}

var _ ui.Renderable = Bubble{}

// Bubble describes one composed message visual.
type Bubble struct {
	IsCurrentUser bool
	Variant       Variant

	// ShowTail squares the inner-bottom corner nearest the sender's side,
	// suggesting the bubble's origin.
	ShowTail bool

	Decorators []decorator.Decorator
	Content    string
}

// Render lays out the bubble: top and bottom decorators stack vertically
// outside it, left and right decorators sit horizontally adjacent.
func (b Bubble) Render(ctx ui.Context) string {
	var top, bottom, left, right []string
	for _, d := range b.Decorators {
		switch d.Anchor {
		case decorator.AnchorTop:
			top = append(top, d.Fragment)
		case decorator.AnchorBottom:
			bottom = append(bottom, d.Fragment)
		case decorator.AnchorLeft:
			left = append(left, d.Fragment)
		case decorator.AnchorRight:
			right = append(right, d.Fragment)
		}
	}

	box := b.boxStyle(ctx).Render(b.Content)

	row := make([]string, 0, len(left)+len(right)+1)
	row = append(row, left...)
	row = append(row, box)
	row = append(row, right...)
	composed := lipgloss.JoinHorizontal(lipgloss.Bottom, row...)

	sections := make([]string, 0, len(top)+2)
	sections = append(sections, top...)
	sections = append(sections, composed)
	if len(bottom) > 0 {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Bottom, joinSpaced(bottom)...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func joinSpaced(fragments []string) []string {
	out := make([]string, 0, len(fragments)*2-1)
	for i, f := range fragments {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, f)
	}
	return out
}

func (b Bubble) boxStyle(ctx ui.Context) lipgloss.Style {
	colours := ctx.Theme.BubbleColours(b.IsCurrentUser)

	style := lipgloss.NewStyle().
		Background(colours.Base).
		Foreground(colours.OnBase).
		Padding(0, 2)

	switch b.Variant {
	case VariantCompact:
		style = style.Padding(0, 1)
	case VariantHighlighted:
		style = style.
			Border(b.tailBorder(ctx.Theme.Borders.Thick)).
			BorderForeground(ctx.Theme.Palette.Primary.Base)
	case VariantPinned:
		style = style.
			Border(ctx.Theme.Borders.Thick, false, false, false, true).
			BorderForeground(ctx.Theme.Palette.Warning.Base)
	case VariantSystem:
		style = lipgloss.NewStyle().
			Background(ctx.Theme.Palette.Surface.Muted).
			Foreground(ctx.Theme.Palette.Surface.OnBase).
			Padding(0, 1)
	default:
		style = style.Border(b.tailBorder(ctx.Theme.Borders.Rounded)).
			BorderForeground(colours.Muted)
	}

	if ctx.Width > 0 {
		style = style.MaxWidth(ctx.Width)
	}
	return style
}

// tailBorder squares the bottom corner on the sender's side when the tail is
// enabled: bottom-right for own messages, bottom-left for others'.
func (b Bubble) tailBorder(base lipgloss.Border) lipgloss.Border {
	if !b.ShowTail {
		return base
	}
	if b.IsCurrentUser {
		base.BottomRight = "┘"
	} else {
		base.BottomLeft = "└"
	}
	return base
}
