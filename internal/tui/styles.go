package tui

import (
	"github.com/charmbracelet/lipgloss"
)

type viewStyles struct {
	header      lipgloss.Style
	footer      lipgloss.Style
	prompt      lipgloss.Style
	sender      lipgloss.Style
	typing      lipgloss.Style
	empty       lipgloss.Style
	selected    lipgloss.Style
	errorBanner lipgloss.Style

	overlay      lipgloss.Style
	overlayTitle lipgloss.Style
}

func (m Model) styles() viewStyles {
	p := m.theme.Palette
	return viewStyles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.OnBase).
			Background(p.Primary.Base).
			Padding(0, 1),
		footer: lipgloss.NewStyle().
			Foreground(p.Neutral.Muted),
		prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base),
		sender: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary.Base),
		typing: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Neutral.Muted),
		empty: lipgloss.NewStyle().
			Foreground(p.Neutral.Muted),
		selected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Primary.Base),
		errorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Danger.Contrast).
			Background(p.Danger.Base).
			Padding(0, 1),
		overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary.Base).
			Padding(1, 2),
		overlayTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base),
	}
}
