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
	git.RegisterCommand("log", func() git.Command { return &LogCommand{} })
}

type LogCommand struct{}

// Ensure LogCommand implements git.Command
var _ git.Command = (*LogCommand)(nil)

type LogOptions struct {
	Oneline bool
}

func (c *LogCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	opts := &LogOptions{}
	for _, arg := range args[1:] {
		switch {
		case isHelpFlag(arg):
			return req.State, c.Help(), nil
		case arg == "--oneline":
			opts.Oneline = true
		default:
			return req.State, "", unknownOption(arg)
		}
	}

	out, err := c.render(req.State.Local, opts)
	if err != nil {
		return req.State, "", err
	}
	return req.State, out, nil
}

var errNoCommits = errors.New("your current branch does not have any commits yet")

func (c *LogCommand) render(h state.History, opts *LogOptions) (string, error) {
	if h.CommitCount() == 0 {
		return "", errNoCommits
	}

	var sb strings.Builder
	for i := len(h) - 1; i >= 0; i-- {
		op := h[i]
		if op.Kind != state.KindCommit {
			continue
		}
		if opts.Oneline {
			sb.WriteString(fmt.Sprintf("%s %s\n", shortHash(op.Hash), op.Arg))
			continue
		}
		sb.WriteString(fmt.Sprintf("commit %s\n", op.Hash))
		sb.WriteString(fmt.Sprintf("    %s\n\n", op.Arg))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (c *LogCommand) Help() string {
	return `📘 GIT-LOG (1)                                          Git Manual

 💡 DESCRIPTION
    List the commits of your local history, newest first.

 📋 SYNOPSIS
    git log [--oneline]
`
}
