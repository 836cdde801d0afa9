package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bear-block/chatx/internal/message"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = m.listHeight()
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.loadingMore {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MessagesLoadedMsg:
		m.loading = false
		m.messages = msg.Messages
		m.hasMore = m.session.HasMore()
		m.cursor = 0
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case MoreLoadedMsg:
		m.loadingMore = false
		m.messages = msg.Messages
		m.hasMore = msg.HasMore
		m.refreshViewport()
		return m, nil

	case LoadErrorMsg:
		m.loading = false
		m.loadingMore = false
		return m.withError("Couldn't load messages", msg.Err)

	case MessageSentMsg:
		m.messages = m.session.Messages()
		m.refreshViewport()
		m.viewport.GotoBottom()
		if msg.Err != nil {
			return m.withError("Message failed to send", msg.Err)
		}
		return m, nil

	case ActionDoneMsg:
		m.messages = m.session.Messages()
		m.refreshViewport()
		if msg.Err != nil {
			return m.withError("Action failed", msg.Err)
		}
		return m, nil

	case SearchResultsMsg:
		if msg.Err != nil {
			return m.withError("Search failed", msg.Err)
		}
		m.searchQuery = msg.Query
		m.searchResults = msg.Results
		return m, nil

	case IncomingMsg:
		m.session.Apply(msg.Message)
		m.messages = m.session.Messages()
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case TypingMsg:
		m.typingUsers = updateTyping(m.typingUsers, msg.User, msg.Typing)
		return m, nil

	case dismissErrorMsg:
		m.showError = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewSearch:
		return m.handleSearchKey(msg)
	case ViewMedia:
		switch msg.String() {
		case "esc", "enter", "q":
			m.viewMode = ViewChat
			m.mediaMsg = nil
		}
		return m, nil
	}
	return m.handleChatKey(msg)
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.input.Value()
		if text == "" {
			return m, nil
		}
		m.input.Reset()
		if m.editingID != "" {
			id := m.editingID
			m.editingID = ""
			return m, editCmd(m.session, id, text)
		}
		return m, tea.Batch(sendCmd(m.session, text), typingCmd(m.session, false))

	case "esc":
		if m.editingID != "" {
			m.editingID = ""
			m.input.Reset()
			return m, nil
		}
		return m, tea.Quit

	case "up":
		if m.cursor < len(m.messages)-1 {
			m.cursor++
		} else if m.hasMore && !m.loadingMore {
			m.loadingMore = true
			return m, tea.Batch(m.spinner.Tick, loadMoreCmd(m.session))
		}
		return m, nil

	case "down":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "pgup":
		if m.hasMore && !m.loadingMore {
			m.loadingMore = true
			return m, tea.Batch(m.spinner.Tick, loadMoreCmd(m.session))
		}
		return m, nil

	case "ctrl+f":
		m.viewMode = ViewSearch
		m.search.Reset()
		m.search.Focus()
		m.input.Blur()
		return m, nil

	case "ctrl+r":
		if sel, ok := m.selected(); ok {
			return m, reactCmd(m.session, sel.ID, "👍")
		}
		return m, nil

	case "ctrl+d":
		if sel, ok := m.selected(); ok && sel.User.ID == m.session.User().ID {
			return m, deleteCmd(m.session, sel.ID)
		}
		return m, nil

	case "ctrl+e":
		if sel, ok := m.selected(); ok && sel.User.ID == m.session.User().ID && !sel.IsDeleted {
			m.editingID = sel.ID
			m.input.SetValue(sel.Text)
			m.input.CursorEnd()
		}
		return m, nil

	case "ctrl+s":
		if sel, ok := m.selected(); ok && sel.Status == message.StatusFailed {
			return m, resendCmd(m.session, sel.ID)
		}
		return m, nil

	case "ctrl+o":
		if sel, ok := m.selected(); ok && len(sel.Media) > 0 {
			m.viewMode = ViewMedia
			m.mediaMsg = &sel
		}
		return m, nil
	}

	wasTyping := m.input.Value() != ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	isTyping := m.input.Value() != ""

	if wasTyping != isTyping {
		return m, tea.Batch(cmd, typingCmd(m.session, isTyping))
	}
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewChat
		m.search.Blur()
		m.searchResults = nil
		m.searchQuery = ""
		m.input.Focus()
		return m, nil
	case "enter":
		query := m.search.Value()
		if query == "" {
			return m, nil
		}
		return m, searchCmd(m.session, query)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) withError(text string, err error) (tea.Model, tea.Cmd) {
	m.showError = true
	m.errorMsg = text
	m.errorErr = err
	m.log.Error(err, text)
	return *m, dismissErrorCmd()
}

func updateTyping(users []message.User, user message.User, typing bool) []message.User {
	out := users[:0]
	for _, u := range users {
		if u.ID != user.ID {
			out = append(out, u)
		}
	}
	if typing {
		out = append(out, user)
	}
	return out
}
