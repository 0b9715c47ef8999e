package commands

import (
	"context"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func init() {
	git.RegisterCommand("version", func() git.Command { return &VersionCommand{} })
}

// Version is the string reported by git version.
const Version = "git version 2.47.1 (GitFlowSim)"

type VersionCommand struct{}

func (c *VersionCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	return req.State, Version, nil
}

func (c *VersionCommand) Help() string {
	return `📘 GIT-VERSION (1)                                      Git Manual

 💡 DESCRIPTION
    Show the simulator version.

 📋 SYNOPSIS
    git version
`
}
