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
	git.RegisterCommand("branch", func() git.Command { return &BranchCommand{} })
}

type BranchCommand struct{}

// Ensure BranchCommand implements git.Command
var _ git.Command = (*BranchCommand)(nil)

func (c *BranchCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	// Without arguments this lists branches.
	if len(args) < 2 {
		return req.State, c.listBranches(req.State), nil
	}

	words, err := positionals(args)
	if err != nil {
		if errors.Is(err, errHelpRequested) {
			return req.State, c.Help(), nil
		}
		return req.State, "", err
	}

	// A start point after the name has no meaning here and is ignored.
	name := ""
	if len(words) > 0 {
		name = strings.TrimSpace(words[0])
	}
	if name == "" {
		return req.State, "", git.NewMissingArgumentError("branch name", "git branch <name>")
	}

	next := appendLocal(req, req.NewOperation(state.KindBranch, name))
	return next, fmt.Sprintf("Created branch '%s'.", name), nil
}

func (c *BranchCommand) listBranches(st state.Snapshot) string {
	var sb strings.Builder
	for _, name := range st.Local.Branches() {
		if name == st.Branch {
			sb.WriteString("* " + name + "\n")
		} else {
			sb.WriteString("  " + name + "\n")
		}
	}
	// The checked-out branch may be unknown to the history after a pull.
	if !contains(st.Local.Branches(), st.Branch) {
		sb.WriteString("* " + st.Branch + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (c *BranchCommand) Help() string {
	return `📘 GIT-BRANCH (1)                                       Git Manual

 💡 DESCRIPTION
    Create a branch pointer at the current commit, or list branches.
    Creating a branch does not switch to it; use checkout for that.

 📋 SYNOPSIS
    git branch
    git branch <name>

 🛠  PRACTICAL EXAMPLES
    1. Start a feature branch, then move onto it
       $ git branch feature
       $ git checkout feature
`
}
