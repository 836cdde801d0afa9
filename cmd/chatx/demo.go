package main

import (
	"context"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bear-block/chatx/internal/logger"
	"github.com/bear-block/chatx/internal/message"
	"github.com/bear-block/chatx/internal/renderer"
	"github.com/bear-block/chatx/internal/session"
	"github.com/bear-block/chatx/internal/tui"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive chat demo against an in-memory backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			level := cfg.Development.LogLevel
			if flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
			if err != nil {
				return err
			}

			history := demoHistory()
			sess := session.New("demo", message.User{ID: "me", Name: "You"}, demoCallbacks(history), session.WithLogger(log))

			factory, err := renderer.NewFactory(renderer.NewRegistry(), renderer.WithLogger(log))
			if err != nil {
				return err
			}

			model := tui.NewModel(sess, factory, cfg, tui.WithLogger(log))

			var opts []tea.ProgramOption
			if term.IsTerminal(int(os.Stdout.Fd())) {
				opts = append(opts, tea.WithAltScreen())
			}
			_, err = tea.NewProgram(model, opts...).Run()
			return err
		},
	}
}

// demoCallbacks serves the seeded history from memory with a small delay so
// optimistic states stay visible.
func demoCallbacks(history []message.Message) session.Callbacks {
	return session.Callbacks{
		SendMessage: func(ctx context.Context, msg message.Message) error {
			select {
			case <-time.After(300 * time.Millisecond):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
		EditMessage:   func(context.Context, string, string) error { return nil },
		DeleteMessage: func(context.Context, string) error { return nil },
		AddReaction:   func(context.Context, string, string) error { return nil },
		RemoveReaction: func(context.Context, string, string) error {
			return nil
		},
		LoadMessages: func(context.Context, string) ([]message.Message, error) {
			return history, nil
		},
		LoadMoreMessages: func(context.Context, string, string) ([]message.Message, error) {
			return nil, nil
		},
		SearchMessages: func(_ context.Context, _ string, query string) ([]message.Message, error) {
			var hits []message.Message
			for _, m := range history {
				if strings.Contains(strings.ToLower(m.Text), strings.ToLower(query)) {
					hits = append(hits, m)
				}
			}
			return hits, nil
		},
	}
}

func demoHistory() []message.Message {
	now := time.Now()
	alex := message.User{ID: "u2", Name: "Alex Rivera"}
	me := message.User{ID: "me", Name: "You"}

	greeting := message.Message{
		ID: "d1", Kind: message.KindText, Text: "Hey! Did you see the release notes?",
		User: alex, Timestamp: now.Add(-30 * time.Minute), Status: message.StatusRead,
	}

	return []message.Message{
		{
			ID: "d6", Kind: message.KindFile, User: alex,
			Timestamp: now.Add(-2 * time.Minute), Status: message.StatusRead,
			Media: []message.Attachment{{
				Kind: message.MediaFile, Filename: "release-notes.pdf", Size: 482_000,
			}},
		},
		{
			ID: "d5", Kind: message.KindText, Text: "Looks great so far", User: me,
			Timestamp: now.Add(-5 * time.Minute), Status: message.StatusRead,
			Reactions: []message.Reaction{{Emoji: "🎉", Count: 1, Users: []string{"u2"}}},
		},
		{
			ID: "d4", Kind: message.KindImage, Text: "screenshot attached", User: alex,
			Timestamp: now.Add(-8 * time.Minute), Status: message.StatusRead,
			Media: []message.Attachment{{
				Kind: message.MediaImage, Filename: "dashboard.png",
				Width: 1280, Height: 720, Size: 1_400_000,
			}},
		},
		{
			ID: "d3", Kind: message.KindText, Text: "Yes, the theming section is new", User: me,
			Timestamp: now.Add(-12 * time.Minute), Status: message.StatusRead,
			ReplyTo: "d1", ReplyMessage: &greeting,
		},
		{
			ID: "d2", Kind: message.KindSystem,
			Timestamp: now.Add(-20 * time.Minute),
			System: &message.SystemData{
				Event: message.SystemUserJoined,
				Actor: &alex,
			},
		},
		greeting,
	}
}
