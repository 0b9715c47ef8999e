package commands

import (
	"context"
	"errors"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func init() {
	git.RegisterCommand("pull", func() git.Command { return &PullCommand{} })
}

type PullCommand struct{}

// Ensure PullCommand implements git.Command
var _ git.Command = (*PullCommand)(nil)

// Execute makes the local history an exact copy of the remote one.
// Local-only operations are dropped; there is no merge.
func (c *PullCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	if _, err := positionals(args); err != nil {
		if errors.Is(err, errHelpRequested) {
			return req.State, c.Help(), nil
		}
		return req.State, "", err
	}

	next := req.State
	next.Local = req.State.Remote.Clone()
	return next, "Success: Pulled latest changes from origin/main.", nil
}

func (c *PullCommand) Help() string {
	return `📘 GIT-PULL (1)                                         Git Manual

 💡 DESCRIPTION
    Make your local history match origin/main.
    In this simulator pull replaces local history outright.

 📋 SYNOPSIS
    git pull [origin] [main]
`
}
