package commands

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func testSources() *state.Sources {
	return state.NewSources(rand.NewPCG(1, 2), 1)
}

// run executes cmd against st the way the dispatcher would.
func run(t *testing.T, cmd git.Command, st state.Snapshot, input string) (state.Snapshot, string, error) {
	t.Helper()
	p, err := git.ParseCommand(input)
	require.NoError(t, err)
	req := &git.Request{Input: strings.TrimSpace(input), State: st, Sources: testSources()}
	return cmd.Execute(context.Background(), req, p.Argv())
}

// mustRun is run for inputs that are expected to succeed.
func mustRun(t *testing.T, cmd git.Command, st state.Snapshot, input string) (state.Snapshot, string) {
	t.Helper()
	next, out, err := run(t, cmd, st, input)
	require.NoError(t, err, input)
	return next, out
}

// withCommits returns a snapshot whose local history holds one commit per message.
func withCommits(t *testing.T, messages ...string) state.Snapshot {
	t.Helper()
	st := state.NewSnapshot()
	for _, m := range messages {
		st, _ = mustRun(t, &CommitCommand{}, st, `git commit "`+m+`"`)
	}
	return st
}
