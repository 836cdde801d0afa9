package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bear-block/chatx/internal/message"
)

// ColourSet represents a semantic color set with base, on-base, muted, and
// contrast colors. All colors are adaptive, providing both light and dark
// mode variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by chat components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Neutral   ColourSet
}

// BubbleColors holds the two message-bubble backgrounds: the current user's
// own messages and everyone else's.
type BubbleColors struct {
	Sent     ColourSet
	Received ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// Theme is an immutable styling theme for chat components. Themes should be
// created once and reused; modifications produce new values.
type Theme struct {
	Palette Palette
	Bubbles BubbleColors
	Borders BorderSet
}

// StatusColor returns the foreground colour for a delivery-status glyph.
// Read uses the primary accent, failed uses the danger colour, and everything
// else stays muted.
func (t Theme) StatusColor(status message.Status) lipgloss.AdaptiveColor {
	switch status {
	case message.StatusRead:
		return t.Palette.Primary.Base
	case message.StatusFailed:
		return t.Palette.Danger.Base
	default:
		return t.Palette.Neutral.Base
	}
}

// BubbleColours returns the colour set for a bubble by sender.
func (t Theme) BubbleColours(isCurrentUser bool) ColourSet {
	if isCurrentUser {
		return t.Bubbles.Sent
	}
	return t.Bubbles.Received
}

// Default returns the default chat theme.
func Default() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	bubbles := BubbleColors{
		Sent: ColourSet{
			Base:     ac("#3b82f6", "#1d4ed8"),
			OnBase:   ac("#f8fafc", "#eff6ff"),
			Muted:    ac("#2563eb", "#1e40af"),
			Contrast: ac("#facc15", "#facc15"),
		},
		Received: ColourSet{
			Base:     ac("#e2e8f0", "#1f2937"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#cbd5e1", "#374151"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}

	return Theme{
		Palette: palette,
		Bubbles: bubbles,
		Borders: borders,
	}
}

// Dark returns a dark theme variant.
func Dark() Theme {
	t := Default()

	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	t.Palette.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	}
	t.Palette.Neutral = ColourSet{
		Base:     ac("#475569", "#334155"),
		OnBase:   ac("#e5e7eb", "#cbd5f5"),
		Muted:    ac("#374151", "#1f2937"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}
	t.Bubbles.Received = ColourSet{
		Base:     ac("#1f2937", "#111827"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#374151", "#1f2937"),
		Contrast: ac("#60a5fa", "#60a5fa"),
	}

	return t
}
