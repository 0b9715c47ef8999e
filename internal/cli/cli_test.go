package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/kurobon/gitflowsim/internal/git/commands"
	"github.com/kurobon/gitflowsim/internal/state"
)

func TestRunLines(t *testing.T) {
	sess := state.NewSession("lines", nil)
	in := strings.NewReader(strings.Join([]string{
		`git commit -m "first"`,
		"",
		"git push",
		"teammate",
		"git push",
		"git pull",
		"git checkout -b feature",
	}, "\n"))
	var out bytes.Buffer

	require.NoError(t, RunLines(context.Background(), in, &out, sess))

	text := out.String()
	assert.Contains(t, text, "(main) $ ")
	assert.Contains(t, text, "Success: Pushed local commits to origin/main.")
	assert.Contains(t, text, "Update: A teammate just pushed code to origin/main!")
	assert.Contains(t, text, "Error: push rejected")
	assert.Contains(t, text, "Success: Pulled latest changes from origin/main.")
	assert.Contains(t, text, "(feature) $ ")

	snap := sess.Snapshot()
	assert.Equal(t, "feature", snap.Branch)
	assert.Equal(t, 2, snap.Local.CommitCount())
}

func TestRunLines_Exit(t *testing.T) {
	sess := state.NewSession("exit", nil)
	in := strings.NewReader("git commit a\nexit\ngit commit b\n")
	var out bytes.Buffer

	require.NoError(t, RunLines(context.Background(), in, &out, sess))
	assert.Equal(t, 1, sess.Snapshot().Local.CommitCount())
}

func TestRunLines_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunLines(ctx, strings.NewReader("git commit a\n"), &bytes.Buffer{}, state.NewSession("ctx", nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMissionsCommand(t *testing.T) {
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"missions"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "first-commit")
	assert.Contains(t, out.String(), "rejected-push")
}

func TestMissionsCommand_CustomDir(t *testing.T) {
	dir := t.TempDir()
	mission := "id: custom\ntitle: Custom Mission\ndifficulty:\n  stars: 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(mission), 0644))

	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"missions", "--mission-dir", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Custom Mission")
	assert.NotContains(t, out.String(), "first-commit")
}

func TestReplCommand_Plain(t *testing.T) {
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("git commit \"from repl\"\ngit log --oneline\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"repl", "--plain"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "from repl")
}

func TestRootCommand_BadConfig(t *testing.T) {
	cmd := NewRootCmd("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"missions", "--log-level", "shouty"})

	assert.Error(t, cmd.Execute())
}
