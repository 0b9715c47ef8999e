package git_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurobon/gitflowsim/internal/git"
	_ "github.com/kurobon/gitflowsim/internal/git/commands"
	"github.com/kurobon/gitflowsim/internal/state"
)

func newSources() *state.Sources {
	return state.NewSources(rand.NewPCG(42, 1024), 1)
}

// apply runs lines in order and returns the final state and the last feedback.
func apply(st state.Snapshot, src *state.Sources, lines ...string) (state.Snapshot, string) {
	var out string
	for _, line := range lines {
		st, out = git.Apply(context.Background(), st, src, line)
	}
	return st, out
}

func TestApply_CommitInit(t *testing.T) {
	st, out := apply(state.NewSnapshot(), newSources(), `git commit "init"`)

	require.Len(t, st.Local, 1)
	assert.Equal(t, state.KindCommit, st.Local[0].Kind)
	assert.Equal(t, "init", st.Local[0].Arg)
	assert.Regexp(t, `^[0-9a-f]{40}$`, st.Local[0].Hash)
	assert.Empty(t, st.Remote)
	assert.False(t, git.IsErrorFeedback(out))
}

func TestApply_PushAfterCommit(t *testing.T) {
	src := newSources()
	st, _ := apply(state.NewSnapshot(), src, `git commit "init"`)
	st, out := apply(st, src, "git push")

	assert.Equal(t, st.Local, st.Remote)
	assert.Equal(t, "Success: Pushed local commits to origin/main.", out)
}

func TestApply_TeammatePushThenRejectedPush(t *testing.T) {
	src := newSources()
	st, _ := apply(state.NewSnapshot(), src, `git commit "init"`, "git push")
	st, _ = git.TeammatePush(st, src)
	before := st.Clone()

	st, out := apply(st, src, "git push")

	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "push rejected")
	assert.Equal(t, before, st, "a rejected push changes nothing")

	st, out = apply(st, src, "git pull")
	assert.Equal(t, "Success: Pulled latest changes from origin/main.", out)
	st, out = apply(st, src, `git commit "mine"`, "git push")
	assert.Equal(t, "Success: Pushed local commits to origin/main.", out)
	assert.True(t, st.InSync())
}

func TestApply_CheckoutCreate(t *testing.T) {
	st, _ := apply(state.NewSnapshot(), newSources(), "git checkout -b feature")

	assert.Equal(t, "feature", st.Branch)
	require.Len(t, st.Local, 1)
	assert.Equal(t, state.KindCheckout, st.Local[0].Kind)
	assert.Equal(t, "feature", st.Local[0].Arg)
}

func TestApply_CheckoutIsIdempotentOnBranch(t *testing.T) {
	st, _ := apply(state.NewSnapshot(), newSources(), "git checkout dev", "git checkout dev")

	assert.Equal(t, "dev", st.Branch)
	assert.Len(t, st.Local, 2, "each checkout still records an operation")
}

func TestApply_ClearFromAnyState(t *testing.T) {
	src := newSources()
	st, _ := apply(state.NewSnapshot(), src, `git commit "a"`, "git push", "git checkout -b x")
	st, _ = git.TeammatePush(st, src)

	st, out := apply(st, src, "clear")
	assert.Equal(t, "Console cleared.", out)
	assert.Equal(t, state.NewSnapshot(), st)
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		input    string
		feedback string
	}{
		{"ls", "Error: Command 'ls' not found. Try starting with 'git'."},
		{"git frobnicate", "Error: Unknown git command 'frobnicate'."},
		{"git branch \"\"", "Error: branch name required. usage: git branch <name>"},
		{"git checkout", "Error: branch name required. usage: git checkout [-b] <branch>"},
		{"git merge", "Error: branch name required. usage: git merge <branch>"},
		{"git commit", `Error: commit message required. usage: git commit "<message>"`},
		{`git commit "oops`, ""},
		{"", "Error: empty command"},
		{"clear the screen", "Error: Command 'clear' not found. Try starting with 'git'."},
		{"clear x", "Error: Command 'clear' not found. Try starting with 'git'."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			src := newSources()
			st, _ := apply(state.NewSnapshot(), src, `git commit "base"`)
			before := st.Clone()

			next, out := apply(st, src, tt.input)

			assert.True(t, git.IsErrorFeedback(out), out)
			if tt.feedback != "" {
				assert.Equal(t, tt.feedback, out)
			}
			assert.Equal(t, before, next, "failed commands leave state untouched")
		})
	}
}

func TestApply_HelpAndVersion(t *testing.T) {
	src := newSources()
	for _, input := range []string{"git", "git -h", "git --help", "git help"} {
		st, out := apply(state.NewSnapshot(), src, input)
		assert.Contains(t, out, "usage: git", input)
		assert.Empty(t, st.Local, input)
	}
	for _, input := range []string{"git version", "git -v", "git --version"} {
		_, out := apply(state.NewSnapshot(), src, input)
		assert.Equal(t, "git version 2.47.1 (GitFlowSim)", out, input)
	}
}

func TestApply_RevertWithoutCommits(t *testing.T) {
	st, out := apply(state.NewSnapshot(), newSources(), "git revert")
	assert.False(t, git.IsErrorFeedback(out))
	require.Len(t, st.Local, 1)
	assert.Equal(t, "Revert HEAD", st.Local[0].Arg)
}

func TestApply_OperationIDsIncrease(t *testing.T) {
	st, _ := apply(state.NewSnapshot(), newSources(), `git commit a`, "git branch b", "git merge b", `git commit c`)
	for i := 1; i < len(st.Local); i++ {
		assert.Greater(t, st.Local[i].ID, st.Local[i-1].ID)
	}
}

func TestExecute_RecordsReflog(t *testing.T) {
	sess := state.NewSession("exec", newSources())

	out := git.Execute(context.Background(), sess, `  git commit "hello"  `)
	git.Execute(context.Background(), sess, "nope")

	log := sess.Transcript()
	require.Len(t, log, 2)
	assert.Equal(t, `git commit "hello"`, log[0].Command)
	assert.Equal(t, out, log[0].Output)
	assert.True(t, git.IsErrorFeedback(log[1].Output))
	assert.Len(t, sess.Snapshot().Local, 1)
}

func TestExecuteSnapshot_ReturnsProducedState(t *testing.T) {
	sess := state.NewSession("snapshot", newSources())

	next, out := git.ExecuteSnapshot(context.Background(), sess, "git checkout -b feature")
	assert.Equal(t, "Switched to a new branch 'feature'", out)
	assert.Equal(t, "feature", next.Branch)
	assert.Equal(t, sess.Snapshot(), next)

	next.Local[0].Arg = "mutated"
	assert.Equal(t, "feature", sess.Snapshot().Local[0].Arg, "returned snapshot is a copy")
}

func TestExecute_ConcurrentCommits(t *testing.T) {
	sess := state.NewSession("concurrent", nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			git.Execute(context.Background(), sess, `git commit "parallel"`)
		}()
	}
	wg.Wait()

	assert.Len(t, sess.Snapshot().Local, 50)
}

func TestGetSupportedCommands(t *testing.T) {
	cmds := git.GetSupportedCommands()
	for _, name := range []string{"branch", "checkout", "commit", "help", "log", "merge", "pull", "push", "revert", "status", "switch", "version"} {
		assert.Contains(t, cmds, name)
	}
	assert.NotContains(t, cmds, "clear", "clear is a shell command")
	assert.IsIncreasing(t, cmds)
}

func TestGetCommandHelp(t *testing.T) {
	help, err := git.GetCommandHelp("commit")
	require.NoError(t, err)
	assert.Contains(t, help, "GIT-COMMIT")

	_, err = git.GetCommandHelp("rebase")
	assert.ErrorIs(t, err, git.ErrUnknownSubcommand)
}
