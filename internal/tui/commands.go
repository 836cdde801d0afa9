package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bear-block/chatx/internal/session"
)

const callbackTimeout = 30 * time.Second

// loadCmd fetches the initial history page asynchronously.
func loadCmd(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
		defer cancel()

		if err := s.Load(ctx); err != nil {
			return LoadErrorMsg{Err: err}
		}
		return MessagesLoadedMsg{Messages: s.Messages()}
	}
}

// loadMoreCmd fetches the page older than the current history.
func loadMoreCmd(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
		defer cancel()

		if err := s.LoadMore(ctx); err != nil {
			return LoadErrorMsg{Err: err}
		}
		return MoreLoadedMsg{Messages: s.Messages(), HasMore: s.HasMore()}
	}
}

// sendCmd delivers a text message and reports how it settled.
func sendCmd(s *session.Session, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
		defer cancel()

		sent, err := s.SendText(ctx, text)
		return MessageSentMsg{Message: sent, Err: err}
	}
}

// resendCmd retries a failed message.
func resendCmd(s *session.Session, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
		defer cancel()

		sent, err := s.Resend(ctx, id)
		return MessageSentMsg{Message: sent, Err: err}
	}
}

// editCmd replaces a message's text.
func editCmd(s *session.Session, id, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
		defer cancel()

		return ActionDoneMsg{Op: "edit", MessageID: id, Err: s.Edit(ctx, id, text)}
	}
}

// deleteCmd removes a message.
func deleteCmd(s *session.Session, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
		defer cancel()

		return ActionDoneMsg{Op: "delete", MessageID: id, Err: s.Delete(ctx, id)}
	}
}

// reactCmd toggles the session user's reaction on a message.
func reactCmd(s *session.Session, id, emoji string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
		defer cancel()

		msg, ok := s.Get(id)
		var err error
		if ok && hasOwnReaction(msg, emoji, s.User().ID) {
			err = s.Unreact(ctx, id, emoji)
		} else {
			err = s.React(ctx, id, emoji)
		}
		return ActionDoneMsg{Op: "react", MessageID: id, Err: err}
	}
}

// searchCmd queries the host for matching messages.
func searchCmd(s *session.Session, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
		defer cancel()

		results, err := s.Search(ctx, query)
		return SearchResultsMsg{Query: query, Results: results, Err: err}
	}
}

// typingCmd notifies the host of the session user's typing state.
func typingCmd(s *session.Session, typing bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
		defer cancel()

		s.SetTyping(ctx, typing)
		return nil
	}
}

// dismissErrorCmd clears the error banner after a short delay.
func dismissErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return dismissErrorMsg{}
	})
}
