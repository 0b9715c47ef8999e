package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func checkoutCmd(t *testing.T, name string) git.Command {
	t.Helper()
	help, err := git.GetCommandHelp(name)
	require.NoError(t, err)
	require.NotEmpty(t, help)

	switch name {
	case "switch":
		return &CheckoutCommand{name: "switch", createFlags: []string{"-c", "-C", "--create"}}
	default:
		return &CheckoutCommand{name: "checkout", createFlags: []string{"-b", "-B"}}
	}
}

func TestCheckoutCommand(t *testing.T) {
	cmd := checkoutCmd(t, "checkout")

	tests := []struct {
		name   string
		input  string
		from   string
		target string
		output string
	}{
		{"Create", "git checkout -b feature", "main", "feature", "Switched to a new branch 'feature'"},
		{"Flag After Name", "git checkout feature -b", "main", "feature", "Switched to a new branch 'feature'"},
		{"Existing Or Unknown", "git checkout develop", "main", "develop", "Switched to branch 'develop'"},
		{"Already On", "git checkout main", "main", "main", "Already on 'main'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := withCommits(t, "base")
			st.Branch = tt.from

			next, out := mustRun(t, cmd, st, tt.input)
			assert.Equal(t, tt.output, out)
			assert.Equal(t, tt.target, next.Branch)

			require.Len(t, next.Local, 2)
			assert.Equal(t, state.KindCheckout, next.Local[1].Kind)
			assert.Equal(t, tt.target, next.Local[1].Arg)
		})
	}
}

func TestCheckoutCommand_MissingName(t *testing.T) {
	cmd := checkoutCmd(t, "checkout")

	for _, input := range []string{"git checkout", "git checkout -b"} {
		t.Run(input, func(t *testing.T) {
			st := withCommits(t, "base")
			next, _, err := run(t, cmd, st, input)
			assert.ErrorIs(t, err, git.ErrMissingArgument)
			assert.Equal(t, st, next)
		})
	}
}

func TestSwitchCommand(t *testing.T) {
	cmd := checkoutCmd(t, "switch")

	next, out := mustRun(t, cmd, state.NewSnapshot(), "git switch -c topic")
	assert.Equal(t, "Switched to a new branch 'topic'", out)
	assert.Equal(t, "topic", next.Branch)
	require.Len(t, next.Local, 1)
	assert.Equal(t, state.KindCheckout, next.Local[0].Kind, "switch records a checkout operation")

	_, _, err := run(t, cmd, state.NewSnapshot(), "git switch -b topic")
	assert.EqualError(t, err, "unknown option: -b")

	_, help := mustRun(t, cmd, state.NewSnapshot(), "git switch -h")
	assert.Contains(t, help, "GIT-SWITCH")
}
