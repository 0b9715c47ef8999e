package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func init() {
	git.RegisterCommand("checkout", func() git.Command {
		return &CheckoutCommand{name: "checkout", createFlags: []string{"-b", "-B"}}
	})
	git.RegisterCommand("switch", func() git.Command {
		return &CheckoutCommand{name: "switch", createFlags: []string{"-c", "-C", "--create"}}
	})
}

// CheckoutCommand moves the branch pointer. Branch existence is not checked:
// checking out an unknown name behaves like creating it.
type CheckoutCommand struct {
	name        string
	createFlags []string
}

// Ensure CheckoutCommand implements git.Command
var _ git.Command = (*CheckoutCommand)(nil)

func (c *CheckoutCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	var (
		create bool
		target string
	)

	for _, arg := range args[1:] {
		switch {
		case isHelpFlag(arg):
			return req.State, c.Help(), nil
		case contains(c.createFlags, arg):
			create = true
		case strings.HasPrefix(arg, "-"):
			return req.State, "", unknownOption(arg)
		case target == "":
			target = strings.TrimSpace(arg)
		}
	}

	if target == "" {
		return req.State, "", git.NewMissingArgumentError("branch name", c.usage())
	}

	next := appendLocal(req, req.NewOperation(state.KindCheckout, target))
	next.Branch = target

	switch {
	case create:
		return next, fmt.Sprintf("Switched to a new branch '%s'", target), nil
	case target == req.State.Branch:
		return next, fmt.Sprintf("Already on '%s'", target), nil
	default:
		return next, fmt.Sprintf("Switched to branch '%s'", target), nil
	}
}

func (c *CheckoutCommand) usage() string {
	return fmt.Sprintf("git %s [%s] <branch>", c.name, c.createFlags[0])
}

func (c *CheckoutCommand) Help() string {
	return fmt.Sprintf(`📘 GIT-%s (1)                                       Git Manual

 💡 DESCRIPTION
    Switch the branch you are working on.
    With %s the branch is created first.

 📋 SYNOPSIS
    %s

 🛠  PRACTICAL EXAMPLES
    1. Create a feature branch and move onto it
       $ git %s %s feature

    2. Go back to main
       $ git %s main
`, strings.ToUpper(c.name), c.createFlags[0], c.usage(), c.name, c.createFlags[0], c.name)
}
