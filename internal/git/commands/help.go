package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

func init() {
	git.RegisterCommand("help", func() git.Command { return &HelpCommand{} })
}

type HelpCommand struct{}

// Ensure HelpCommand implements git.Command
var _ git.Command = (*HelpCommand)(nil)

// Command metadata for help display
type cmdMeta struct {
	Category string
	Desc     string
}

// Categories
const (
	CatHistory = "Examine the history and state"
	CatGrow    = "Grow, mark and tweak your common history"
	CatCollab  = "Collaborate"
	CatShell   = "Shell & Utilities"
)

var commandMetadata = map[string]cmdMeta{
	// History
	"log":    {CatHistory, "Show local commits, newest first"},
	"status": {CatHistory, "Compare the local history with origin/main"},

	// Grow
	"branch":   {CatGrow, "List or create branches"},
	"checkout": {CatGrow, "Switch branches (-b creates one)"},
	"commit":   {CatGrow, "Record a commit on the current branch"},
	"merge":    {CatGrow, "Join another branch into the current one"},
	"revert":   {CatGrow, "Add a commit that undoes the latest commit"},
	"switch":   {CatGrow, "Switch branches (-c creates one)"},

	// Collab
	"pull": {CatCollab, "Replace local history with origin/main"},
	"push": {CatCollab, "Publish local history to origin/main"},

	// Shell
	"clear":   {CatShell, "Reset the simulator"},
	"help":    {CatShell, "Display help information"},
	"version": {CatShell, "Show version info"},
}

// Order of categories for display
var categoryOrder = []string{
	CatHistory,
	CatGrow,
	CatCollab,
	CatShell,
}

func (c *HelpCommand) Execute(ctx context.Context, req *git.Request, args []string) (state.Snapshot, string, error) {
	if len(args) > 1 {
		subcmd := args[1]
		if isHelpFlag(subcmd) {
			return req.State, c.Help(), nil
		}
		helpStr, err := git.GetCommandHelp(subcmd)
		if err != nil {
			return req.State, fmt.Sprintf("git help: unknown command '%s'", subcmd), nil
		}
		return req.State, helpStr, nil
	}

	// 1. Group commands by category
	cmds := append(git.GetSupportedCommands(), "clear")
	grouped := make(map[string][]string)
	maxLen := 0

	for _, cmd := range cmds {
		meta, ok := commandMetadata[cmd]
		if !ok {
			continue
		}
		grouped[meta.Category] = append(grouped[meta.Category], cmd)
		if len(cmd) > maxLen {
			maxLen = len(cmd)
		}
	}

	// 2. Build Output
	var sb strings.Builder
	sb.WriteString("usage: git [--version] [--help] <command> [<args>]\n\n")
	sb.WriteString("These are the Git commands this simulator understands:\n")

	for _, cat := range categoryOrder {
		list := grouped[cat]
		if len(list) == 0 {
			continue
		}
		sort.Strings(list)

		sb.WriteString(fmt.Sprintf("\n%s:\n", cat))
		for _, cmd := range list {
			padding := strings.Repeat(" ", maxLen-len(cmd)+3)
			sb.WriteString(fmt.Sprintf("   %s%s%s\n", cmd, padding, commandMetadata[cmd].Desc))
		}
	}

	sb.WriteString("\nType 'git help <command>' for more information about a specific command.")
	return req.State, sb.String(), nil
}

func (c *HelpCommand) Help() string {
	return `📘 GIT-HELP (1)                                         Git Manual

 💡 DESCRIPTION
    Show how a command is used.
    Without arguments it lists every available command.

 📋 SYNOPSIS
    git help [<command>]

 🛠  EXAMPLES
    1. Look up how to commit
       $ git help commit
`
}
