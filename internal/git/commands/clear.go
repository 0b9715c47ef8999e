package commands

import (
	"context"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func init() {
	git.RegisterShellCommand("clear", func() git.Command { return &ClearCommand{} })
}

// ClearCommand resets both histories and the branch pointer.
type ClearCommand struct{}

func (c *ClearCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	return state.NewSnapshot(), "Console cleared.", nil
}

func (c *ClearCommand) Help() string {
	return "usage: clear\n\nReset local and remote histories and go back to 'main'."
}
