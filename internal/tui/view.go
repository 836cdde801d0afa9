package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bear-block/chatx/internal/message"
	"github.com/bear-block/chatx/internal/renderer"
)

// View renders the current screen.
func (m Model) View() string {
	switch m.viewMode {
	case ViewSearch:
		return m.searchView()
	case ViewMedia:
		return m.mediaView()
	}
	return m.chatView()
}

func (m Model) chatView() string {
	sections := []string{m.headerView()}

	switch {
	case m.loading:
		sections = append(sections, m.centered(m.spinner.View()+" Loading messages"))
	case len(m.messages) == 0:
		sections = append(sections, m.centered(m.styles().empty.Render("No messages yet. Say hello!")))
	default:
		sections = append(sections, m.viewport.View())
	}

	if line := m.typingLine(); line != "" {
		sections = append(sections, line)
	}
	if m.showError {
		sections = append(sections, m.errorBanner())
	}

	prompt := "> "
	if m.editingID != "" {
		prompt = "edit> "
	}
	sections = append(sections, m.styles().prompt.Render(prompt)+m.input.View())
	sections = append(sections, m.footerView())

	return strings.Join(sections, "\n")
}

// refreshViewport repaints the message list, oldest first, into the
// viewport buffer.
func (m *Model) refreshViewport() {
	ctx := m.renderContext()
	rows := make([]string, 0, len(m.messages)+1)

	if m.loadingMore {
		rows = append(rows, m.centered(m.spinner.View()+" Loading older messages"))
	} else if !m.hasMore && len(m.messages) > 0 {
		rows = append(rows, m.centered(m.styles().empty.Render("Beginning of conversation")))
	}

	for i := len(m.messages) - 1; i >= 0; i-- {
		rows = append(rows, m.messageRow(m.messages[i], i == m.cursor, ctx))
	}

	m.viewport.SetContent(strings.Join(rows, "\n"))
}

// messageRow paints one message: an optional sender line, the rendered
// bubble, and right alignment for the session user's own rows.
func (m Model) messageRow(msg message.Message, selected bool, ctx renderer.Context) string {
	own := msg.User.ID == m.session.User().ID

	var parts []string
	if !own && m.cfg.UI.ShowAvatars && msg.Kind != message.KindSystem {
		parts = append(parts, m.styles().sender.Render(
			fmt.Sprintf("(%s) %s", msg.User.Initials(), msg.User.Name)))
	}
	parts = append(parts, m.factory.Render(msg, ctx))

	row := strings.Join(parts, "\n")
	if selected {
		row = m.styles().selected.Render(row)
	}

	align := lipgloss.Left
	if own && msg.Kind != message.KindSystem {
		align = lipgloss.Right
	}
	if msg.Kind == message.KindSystem {
		align = lipgloss.Center
	}
	return lipgloss.PlaceHorizontal(m.width, align, row)
}

func (m Model) headerView() string {
	title := "chat " + m.session.ChatID()
	return m.styles().header.Width(m.width).Render(title)
}

func (m Model) footerView() string {
	help := "enter send • ↑/↓ select • ctrl+f search • ctrl+r react • ctrl+e edit • ctrl+d delete • esc quit"
	if !m.cfg.UI.Unicode {
		help = "enter send | up/down select | ctrl+f search | ctrl+r react | ctrl+e edit | ctrl+d delete | esc quit"
	}
	return m.styles().footer.Width(m.width).Render(help)
}

func (m Model) typingLine() string {
	if len(m.typingUsers) == 0 {
		return ""
	}

	names := make([]string, 0, len(m.typingUsers))
	for _, u := range m.typingUsers {
		names = append(names, u.Name)
	}

	verb := "is typing"
	if len(names) > 1 {
		verb = "are typing"
	}
	return m.styles().typing.Render(strings.Join(names, ", ") + " " + verb + "…")
}

func (m Model) errorBanner() string {
	line := m.errorMsg
	if m.cfg.Development.Debug && m.errorErr != nil {
		line += ": " + m.errorErr.Error()
	}
	if sel, ok := m.selected(); ok && sel.Status == message.StatusFailed {
		line += " (ctrl+s to retry)"
	}
	return m.styles().errorBanner.Width(m.width).Render(line)
}

func (m Model) searchView() string {
	sections := []string{
		m.headerView(),
		m.styles().prompt.Render("search> ") + m.search.View(),
	}

	if m.searchQuery != "" {
		if len(m.searchResults) == 0 {
			sections = append(sections, m.centered(m.styles().empty.Render(
				fmt.Sprintf("No messages match %q", m.searchQuery))))
		} else {
			for _, hit := range m.searchResults {
				text := hit.Text
				if text == "" {
					text = "[" + hit.Kind.String() + "]"
				}
				sections = append(sections,
					m.styles().sender.Render(hit.User.Name+": ")+text)
			}
		}
	}

	sections = append(sections, m.styles().footer.Width(m.width).Render("enter search • esc back"))
	return strings.Join(sections, "\n")
}

func (m Model) mediaView() string {
	if m.mediaMsg == nil {
		return m.chatView()
	}

	rows := []string{m.styles().overlayTitle.Render("Attachments")}
	for i, att := range m.mediaMsg.Media {
		box := renderer.FitBox(att.Width, att.Height, m.width*10*70/100, renderer.MaxImageHeight)
		name := att.Filename
		if name == "" {
			name = string(att.Kind)
		}
		rows = append(rows, fmt.Sprintf("%d. %s  %s  %dx%d",
			i+1, name, renderer.FormatFileSize(att.Size), box.Width, box.Height))
	}
	rows = append(rows, "", m.styles().footer.Render("esc close"))

	overlay := m.styles().overlay.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

func (m Model) centered(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

// listHeight is the viewport height left after the fixed chrome rows.
func (m Model) listHeight() int {
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	return h
}
