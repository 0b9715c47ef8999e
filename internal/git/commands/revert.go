package commands

import (
	"context"
	"fmt"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func init() {
	git.RegisterCommand("revert", func() git.Command { return &RevertCommand{} })
}

// PlaceholderRevertMessage is used when there is no local commit to revert.
const PlaceholderRevertMessage = "Revert HEAD"

type RevertCommand struct{}

// Ensure RevertCommand implements git.Command
var _ git.Command = (*RevertCommand)(nil)

func (c *RevertCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	// Any revision argument is accepted but the most recent local commit is
	// always the one reverted.
	for _, arg := range args[1:] {
		if isHelpFlag(arg) {
			return req.State, c.Help(), nil
		}
	}
	return appendCommit(req, RevertMessage(req.State.Local))
}

// RevertMessage names the commit that undoes the most recent commit in h.
func RevertMessage(h state.History) string {
	last, ok := h.LastCommit()
	if !ok || last.Arg == "" {
		return PlaceholderRevertMessage
	}
	return fmt.Sprintf("Revert \"%s\"", last.Arg)
}

func (c *RevertCommand) Help() string {
	return `📘 GIT-REVERT (1)                                       Git Manual

 💡 DESCRIPTION
    Undo the latest local commit by adding a new commit that reverses it.
    History is not rewritten, so this is safe after pushing.

 📋 SYNOPSIS
    git revert
`
}
