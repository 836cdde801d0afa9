package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "chatx")
}

func TestValidateCommandAcceptsGoodConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chatx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: dark\n"), 0o644))

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"validate", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "is valid")
}

func TestValidateCommandRejectsBadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chatx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate", path})

	assert.Error(t, cmd.Execute())
}

func TestDemoHistoryIsConsistent(t *testing.T) {
	t.Parallel()

	for _, msg := range demoHistory() {
		assert.True(t, msg.ReplyConsistent(), "message %s", msg.ID)
		assert.True(t, msg.ReactionsConsistent(), "message %s", msg.ID)
	}
}

func TestLoadConfigDefaultsWithoutPath(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(&rootFlags{})
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.Behavior.MaxMessageLength)
}
