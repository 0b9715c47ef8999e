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
	git.RegisterCommand("merge", func() git.Command { return &MergeCommand{} })
}

type MergeCommand struct{}

// Ensure MergeCommand implements git.Command
var _ git.Command = (*MergeCommand)(nil)

func (c *MergeCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	words, err := positionals(args)
	if err != nil {
		if errors.Is(err, errHelpRequested) {
			return req.State, c.Help(), nil
		}
		return req.State, "", err
	}

	name := ""
	if len(words) > 0 {
		name = strings.TrimSpace(words[0])
	}
	if name == "" {
		return req.State, "", git.NewMissingArgumentError("branch name", "git merge <branch>")
	}

	// The source branch is not validated; the graph ignores unknown names.
	next := appendLocal(req, req.NewOperation(state.KindMerge, name))
	if name == req.State.Branch {
		return next, "Already up to date.", nil
	}
	return next, fmt.Sprintf("Merged branch '%s' into %s.", name, req.State.Branch), nil
}

func (c *MergeCommand) Help() string {
	return `📘 GIT-MERGE (1)                                        Git Manual

 💡 DESCRIPTION
    Join another branch's history into the current branch.

 📋 SYNOPSIS
    git merge <branch>

 🛠  PRACTICAL EXAMPLES
    1. Bring a finished feature into main
       $ git checkout main
       $ git merge feature
`
}
