package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func init() {
	git.RegisterCommand("status", func() git.Command { return &StatusCommand{} })
}

type StatusCommand struct{}

// Ensure StatusCommand implements git.Command
var _ git.Command = (*StatusCommand)(nil)

func (c *StatusCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	if _, err := positionals(args); err != nil {
		if errors.Is(err, errHelpRequested) {
			return req.State, c.Help(), nil
		}
		return req.State, "", err
	}

	st := req.State
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("On branch %s\n", st.Branch))
	sb.WriteString(Tracking(st))
	sb.WriteString("\nnothing to commit, working tree clean")
	return st, sb.String(), nil
}

// Tracking describes how the local history relates to origin/main.
// Only the operations after the shared prefix are compared.
func Tracking(st state.Snapshot) string {
	if st.InSync() {
		return "Your branch is up to date with 'origin/main'."
	}

	shared := 0
	for shared < len(st.Local) && shared < len(st.Remote) && st.Local[shared] == st.Remote[shared] {
		shared++
	}
	ahead := len(st.Local) - shared
	behind := len(st.Remote) - shared

	switch {
	case ahead > 0 && behind > 0:
		return fmt.Sprintf("Your branch and 'origin/main' have diverged,\nand have %d and %d different operations each, respectively.\n  (use \"git pull\" to take origin/main as it is)", ahead, behind)
	case behind > 0:
		return fmt.Sprintf("Your branch is behind 'origin/main' by %s.\n  (use \"git pull\" to update your local branch)", plural(behind, "operation"))
	default:
		return fmt.Sprintf("Your branch is ahead of 'origin/main' by %s.\n  (use \"git push\" to publish your local commits)", plural(ahead, "operation"))
	}
}

func (c *StatusCommand) Help() string {
	return `📘 GIT-STATUS (1)                                       Git Manual

 💡 DESCRIPTION
    Show the current branch and how far it is from origin/main.
    Nothing is changed.

 📋 SYNOPSIS
    git status
`
}
