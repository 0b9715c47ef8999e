package commands

import (
	"context"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func init() {
	git.RegisterCommand("simulate-commit", func() git.Command { return &SimulateCommitCommand{} })
}

// SimulateCommitCommand is a hidden command used by mission setup scripts to
// stage a teammate push without a UI trigger.
type SimulateCommitCommand struct{}

func (c *SimulateCommitCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	next, out := git.TeammatePush(req.State, req.Sources)
	return next, out, nil
}

func (c *SimulateCommitCommand) Help() string {
	return "usage: git simulate-commit\n\nAppend a teammate commit to origin/main."
}
