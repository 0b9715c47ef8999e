package commands

// commit.go - Simulated Git Commit Command
//
// Records a symbolic commit on the local history. The message may be given
// as a quoted positional argument or with -m.

import (
	"context"
	"errors"
	"strings"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func init() {
	git.RegisterCommand("commit", func() git.Command { return &CommitCommand{} })
}

type CommitCommand struct{}

// Ensure CommitCommand implements git.Command
var _ git.Command = (*CommitCommand)(nil)

type CommitOptions struct {
	Message string
}

func (c *CommitCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	opts, err := c.parseArgs(args)
	if err != nil {
		if errors.Is(err, errHelpRequested) {
			return req.State, c.Help(), nil
		}
		return req.State, "", err
	}
	if opts.Message == "" {
		return req.State, "", git.NewMissingArgumentError("commit message", `git commit "<message>"`)
	}
	return appendCommit(req, opts.Message)
}

func (c *CommitCommand) parseArgs(args []string) (*CommitOptions, error) {
	var words []string

	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help":
			return nil, errHelpRequested
		case "-m", "--message":
			if i+1 >= len(args) {
				return nil, git.NewMissingArgumentError("commit message", `git commit -m "<message>"`)
			}
			words = append(words, args[i+1])
			i++
		case "-a", "--all", "--allow-empty":
			// Nothing is staged in the simulator; accepted so muscle memory works.
		default:
			if isFlag(arg) {
				return nil, unknownOption(arg)
			}
			words = append(words, arg)
		}
	}
	return &CommitOptions{Message: strings.TrimSpace(strings.Join(words, " "))}, nil
}

func (c *CommitCommand) Help() string {
	return `📘 GIT-COMMIT (1)                                       Git Manual

 💡 DESCRIPTION
    Record a snapshot on your local history.
    The remote (origin/main) does not change until you push.

 📋 SYNOPSIS
    git commit "<message>"
    git commit -m "<message>"

 🛠  PRACTICAL EXAMPLES
    1. Quote messages that contain spaces
       $ git commit "add login page"

    2. Then publish it
       $ git push
`
}
