package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitOp(id int64, msg string) Operation {
	return Operation{ID: id, Input: `git commit "` + msg + `"`, Kind: KindCommit, Arg: msg, Hash: "0123456789abcdef0123456789abcdef01234567"}
}

func findCommit(t *testing.T, g *GraphState, msg string) Commit {
	t.Helper()
	for _, c := range g.Commits {
		if c.Message == msg {
			return c
		}
	}
	t.Fatalf("commit %q not in graph", msg)
	return Commit{}
}

func TestBuildGraph_Empty(t *testing.T) {
	g, err := BuildGraph(History{}, "Local Repository", true)
	require.NoError(t, err)

	require.Len(t, g.Commits, 1)
	assert.Equal(t, InitialCommitMessage, g.Commits[0].Message)
	assert.Empty(t, g.Commits[0].ParentID)
	assert.Equal(t, "main", g.HEAD.Ref)
	assert.Equal(t, map[string]string{"main": g.Commits[0].ID}, g.Branches)
	assert.Zero(t, g.CommitCount)
	assert.True(t, g.Visible)
	assert.True(t, g.Local)
	assert.Equal(t, "Local Repository", g.Title)
}

func TestBuildGraph_RemoteVisibility(t *testing.T) {
	g, err := BuildGraph(History{}, "origin/main", false)
	require.NoError(t, err)
	assert.False(t, g.Visible, "an empty remote is hidden")

	g, err = BuildGraph(History{{ID: 1, Kind: KindBranch, Arg: "x"}}, "origin/main", false)
	require.NoError(t, err)
	assert.False(t, g.Visible, "a remote without commits is hidden")

	g, err = BuildGraph(History{commitOp(1, "a")}, "origin/main", false)
	require.NoError(t, err)
	assert.True(t, g.Visible)
}

func TestBuildGraph_LinearCommits(t *testing.T) {
	g, err := BuildGraph(History{commitOp(1, "a"), commitOp(2, "b")}, "Local Repository", true)
	require.NoError(t, err)

	require.Len(t, g.Commits, 3)
	assert.Equal(t, []string{InitialCommitMessage, "a", "b"}, []string{g.Commits[0].Message, g.Commits[1].Message, g.Commits[2].Message})
	assert.Equal(t, g.Commits[0].ID, g.Commits[1].ParentID)
	assert.Equal(t, g.Commits[1].ID, g.Commits[2].ParentID)
	assert.Equal(t, g.Commits[2].ID, g.Branches["main"])
	assert.Equal(t, g.Commits[2].ID, g.HEAD.ID)
	assert.Equal(t, "0123456789abcdef0123456789abcdef01234567", g.Commits[1].Hash)
	assert.Equal(t, 2, g.CommitCount)
}

func TestBuildGraph_BranchCheckoutMerge(t *testing.T) {
	ops := History{
		commitOp(1, "base"),
		{ID: 2, Kind: KindCheckout, Arg: "feature", Input: "git checkout -b feature"},
		commitOp(3, "feature work"),
		{ID: 4, Kind: KindCheckout, Arg: "main", Input: "git checkout main"},
		commitOp(5, "main work"),
		{ID: 6, Kind: KindMerge, Arg: "feature", Input: "git merge feature"},
	}
	g, err := BuildGraph(ops, "Local Repository", true)
	require.NoError(t, err)

	base := findCommit(t, g, "base")
	feature := findCommit(t, g, "feature work")
	mainWork := findCommit(t, g, "main work")
	merge := findCommit(t, g, "Merge branch 'feature'")

	assert.Equal(t, base.ID, feature.ParentID)
	assert.Equal(t, "feature", feature.Branch)
	assert.Equal(t, base.ID, mainWork.ParentID)
	assert.Equal(t, mainWork.ID, merge.ParentID)
	assert.Equal(t, feature.ID, merge.SecondParentID)
	assert.Equal(t, "main", merge.Branch)

	assert.Equal(t, merge.ID, g.Branches["main"])
	assert.Equal(t, feature.ID, g.Branches["feature"])
	assert.Equal(t, "main", g.HEAD.Ref)
	assert.Equal(t, 3, g.CommitCount, "merges are not counted as commits")
}

func TestBuildGraph_MergeIgnoresUnknownAndSelf(t *testing.T) {
	ops := History{
		commitOp(1, "a"),
		{ID: 2, Kind: KindMerge, Arg: "ghost"},
		{ID: 3, Kind: KindMerge, Arg: "main"},
	}
	g, err := BuildGraph(ops, "Local Repository", true)
	require.NoError(t, err)
	assert.Len(t, g.Commits, 2)
}

func TestBuildGraph_FastForwardMergeHasOneParent(t *testing.T) {
	ops := History{
		commitOp(1, "a"),
		{ID: 2, Kind: KindBranch, Arg: "same"},
		{ID: 3, Kind: KindMerge, Arg: "same"},
	}
	g, err := BuildGraph(ops, "Local Repository", true)
	require.NoError(t, err)

	merge := findCommit(t, g, "Merge branch 'same'")
	assert.Empty(t, merge.SecondParentID)
}

func TestBuildGraph_BranchDoesNotMoveExisting(t *testing.T) {
	ops := History{
		{ID: 1, Kind: KindBranch, Arg: "feature"},
		commitOp(2, "a"),
		{ID: 3, Kind: KindBranch, Arg: "feature"},
	}
	g, err := BuildGraph(ops, "Local Repository", true)
	require.NoError(t, err)

	root := findCommit(t, g, InitialCommitMessage)
	assert.Equal(t, root.ID, g.Branches["feature"])
}

func TestBuildGraph_StyleFlags(t *testing.T) {
	ops := History{
		commitOp(1, "a"),
		{ID: 2, Kind: KindCommit, Input: "git revert", Arg: `Revert "a"`, Hash: "r"},
		{ID: 3, Kind: KindCommit, Input: "Teammate Push", Arg: "Feature #7 (Team)", Hash: "t"},
	}
	g, err := BuildGraph(ops, "Local Repository", true)
	require.NoError(t, err)

	assert.True(t, findCommit(t, g, `Revert "a"`).Revert)
	assert.True(t, findCommit(t, g, "Feature #7 (Team)").Teammate)
	plain := findCommit(t, g, "a")
	assert.False(t, plain.Revert)
	assert.False(t, plain.Teammate)
}

func TestBuildGraph_Deterministic(t *testing.T) {
	ops := History{
		commitOp(1, "a"),
		{ID: 2, Kind: KindCheckout, Arg: "x"},
		commitOp(3, "b"),
	}
	first, err := BuildGraph(ops, "Local Repository", true)
	require.NoError(t, err)
	second, err := BuildGraph(ops.Clone(), "Local Repository", true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
