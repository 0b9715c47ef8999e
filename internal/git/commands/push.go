package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func init() {
	git.RegisterCommand("push", func() git.Command { return &PushCommand{} })
}

type PushCommand struct{}

// Ensure PushCommand implements git.Command
var _ git.Command = (*PushCommand)(nil)

// Execute replaces the remote history with the local one.
//
// A push is rejected only when the remote history is longer than the local
// one. Histories of equal length that differ are not detected and the push
// overwrites the remote; the simulator keeps this rule on purpose.
func (c *PushCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	// Syntax: git push [remote] [branch]; there is only origin/main.
	if _, err := positionals(args); err != nil {
		if errors.Is(err, errHelpRequested) {
			return req.State, c.Help(), nil
		}
		return req.State, "", err
	}

	if len(req.State.Remote) > len(req.State.Local) {
		return req.State, "", fmt.Errorf("%w. Remote contains work you do not have locally. Run 'git pull' first.", git.ErrPushRejected)
	}

	next := req.State
	next.Remote = req.State.Local.Clone()
	return next, "Success: Pushed local commits to origin/main.", nil
}

func (c *PushCommand) Help() string {
	return `📘 GIT-PUSH (1)                                         Git Manual

 💡 DESCRIPTION
    Publish your local history to origin/main.
    Rejected when origin has work you do not have yet: pull first.

 📋 SYNOPSIS
    git push [origin] [main]
`
}
