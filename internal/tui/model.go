// Package tui renders an interactive chat view on Bubble Tea, driving a
// session through keyboard gestures and painting each message through the
// renderer factory.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bear-block/chatx/internal/config"
	"github.com/bear-block/chatx/internal/logger"
	"github.com/bear-block/chatx/internal/message"
	"github.com/bear-block/chatx/internal/renderer"
	"github.com/bear-block/chatx/internal/session"
	"github.com/bear-block/chatx/internal/theme"
	"github.com/bear-block/chatx/internal/ui"
)

// Model is the chat view model.
type Model struct {
	// Core data
	session *session.Session
	factory *renderer.Factory
	cfg     config.Config
	theme   theme.Theme
	log     *logger.Logger

	// UI state
	viewMode  ViewMode
	cursor    int // index into messages, 0 is newest
	mediaMsg  *message.Message
	editingID string

	// Component state
	input    textinput.Model
	search   textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	// Data state
	messages      []message.Message
	searchResults []message.Message
	searchQuery   string
	typingUsers   []message.User
	loading       bool
	loadingMore   bool
	hasMore       bool

	// Error state
	showError bool
	errorMsg  string
	errorErr  error

	// Dimensions
	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger attaches a logger for tracing UI events.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) { m.log = log.WithComponent("tui") }
}

// WithTheme overrides the theme selected by the configuration.
func WithTheme(t theme.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// NewModel creates the chat view over a session and render factory.
func NewModel(sess *session.Session, factory *renderer.Factory, cfg config.Config, opts ...Option) Model {
	in := textinput.New()
	in.Placeholder = "Type a message"
	in.CharLimit = cfg.Behavior.MaxMessageLength
	in.Focus()

	se := textinput.New()
	se.Placeholder = "Search messages"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	th := theme.Default()
	if cfg.UI.Theme == "dark" {
		th = theme.Dark()
	}

	m := Model{
		session:  sess,
		factory:  factory,
		cfg:      cfg,
		theme:    th,
		viewMode: ViewChat,
		input:    in,
		search:   se,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		loading:  true,
		hasMore:  true,
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts history loading and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.session))
}

// renderContext builds the renderer context for the current frame.
func (m Model) renderContext() renderer.Context {
	uc := ui.Context{
		Theme:          m.theme,
		Width:          m.width,
		ShowTimestamps: m.cfg.UI.ShowTimestamps,
		ShowAvatars:    m.cfg.UI.ShowAvatars,
		Unicode:        m.cfg.UI.Unicode,
	}
	return renderer.Context{
		Context:       uc,
		CurrentUserID: m.session.User().ID,
	}
}

// selected returns the message under the cursor.
func (m Model) selected() (message.Message, bool) {
	if m.cursor < 0 || m.cursor >= len(m.messages) {
		return message.Message{}, false
	}
	return m.messages[m.cursor], true
}

func hasOwnReaction(msg message.Message, emoji, userID string) bool {
	for _, r := range msg.Reactions {
		if r.Emoji == emoji && r.HasUser(userID) {
			return true
		}
	}
	return false
}
