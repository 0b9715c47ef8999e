package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func TestPushCommand(t *testing.T) {
	cmd := &PushCommand{}

	t.Run("Publishes Local", func(t *testing.T) {
		st := withCommits(t, "A", "B")
		next, out := mustRun(t, cmd, st, "git push")

		assert.Equal(t, "Success: Pushed local commits to origin/main.", out)
		assert.Equal(t, next.Local, next.Remote)
		assert.True(t, next.InSync())
	})

	t.Run("Accepts Remote And Branch", func(t *testing.T) {
		_, out := mustRun(t, cmd, withCommits(t, "A"), "git push origin main")
		assert.Equal(t, "Success: Pushed local commits to origin/main.", out)
	})

	t.Run("Rejected When Remote Is Longer", func(t *testing.T) {
		st := withCommits(t, "A")
		st.Remote = withCommits(t, "X", "Y").Local

		next, _, err := run(t, cmd, st, "git push")
		require.Error(t, err)
		assert.ErrorIs(t, err, git.ErrPushRejected)
		assert.Equal(t, "push rejected. Remote contains work you do not have locally. Run 'git pull' first.", err.Error())
		assert.Equal(t, st, next)
	})

	t.Run("Equal Length Divergence Overwrites", func(t *testing.T) {
		st := withCommits(t, "local")
		st.Remote = withCommits(t, "remote").Local

		next, _ := mustRun(t, cmd, st, "git push")
		assert.Equal(t, "local", next.Remote[0].Arg)
	})

	t.Run("Remote Does Not Alias Local", func(t *testing.T) {
		st := withCommits(t, "A")
		next, _ := mustRun(t, cmd, st, "git push")

		next.Local[0].Arg = "mutated"
		assert.Equal(t, "A", next.Remote[0].Arg)
		assert.Equal(t, "A", st.Local[0].Arg)
	})
}

func TestPullCommand(t *testing.T) {
	cmd := &PullCommand{}

	t.Run("Overwrites Local", func(t *testing.T) {
		st := withCommits(t, "local only")
		st.Remote = withCommits(t, "X", "Y").Local

		next, out := mustRun(t, cmd, st, "git pull")
		assert.Equal(t, "Success: Pulled latest changes from origin/main.", out)
		assert.Equal(t, st.Remote, next.Local)
		assert.Equal(t, st.Remote, next.Remote)
	})

	t.Run("Empty Remote Empties Local", func(t *testing.T) {
		next, _ := mustRun(t, cmd, withCommits(t, "A"), "git pull")
		assert.Empty(t, next.Local)
		assert.NotNil(t, next.Local)
	})

	t.Run("Local Does Not Alias Remote", func(t *testing.T) {
		st := state.NewSnapshot()
		st.Remote = withCommits(t, "R").Local
		next, _ := mustRun(t, cmd, st, "git pull")

		next.Local[0].Arg = "mutated"
		assert.Equal(t, "R", next.Remote[0].Arg)
	})
}

func TestSimulateCommitCommand(t *testing.T) {
	next, out := mustRun(t, &SimulateCommitCommand{}, withCommits(t, "A"), "git simulate-commit")

	assert.Equal(t, "Update: A teammate just pushed code to origin/main!", out)
	require.Len(t, next.Remote, 1)
	assert.Equal(t, git.TeammateInput, next.Remote[0].Input)
	assert.Regexp(t, `^Feature #\d{1,2} \(Team\)$`, next.Remote[0].Arg)
	assert.Len(t, next.Local, 1, "local is untouched")
}

func TestClearCommand(t *testing.T) {
	st := withCommits(t, "A")
	st.Remote = st.Local.Clone()
	st.Branch = "feature"

	next, out := mustRun(t, &ClearCommand{}, st, "git clear")
	assert.Equal(t, "Console cleared.", out)
	assert.Equal(t, state.NewSnapshot(), next)
}
