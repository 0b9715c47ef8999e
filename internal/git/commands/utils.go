package commands

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

// Shared utilities for commands

var errHelpRequested = errors.New("help requested")

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help"
}

// flagPattern matches option-shaped tokens. Quoting is gone after tokenizing,
// so a message like "- fix typo" is told apart by shape alone.
var flagPattern = regexp.MustCompile(`^--?[A-Za-z][\w-]*$`)

func isFlag(arg string) bool {
	return flagPattern.MatchString(arg)
}

func unknownOption(arg string) error {
	return fmt.Errorf("unknown option: %s", arg)
}

// positionals splits args[1:] into positional words, rejecting unknown flags.
func positionals(args []string) ([]string, error) {
	var out []string
	for _, arg := range args[1:] {
		switch {
		case isHelpFlag(arg):
			return nil, errHelpRequested
		case strings.HasPrefix(arg, "-") && arg != "-":
			return nil, unknownOption(arg)
		default:
			out = append(out, arg)
		}
	}
	return out, nil
}

// appendLocal records an operation on the local history.
func appendLocal(req *git.Request, op state.Operation) state.Snapshot {
	next := req.State
	next.Local = req.State.Local.Append(op)
	return next
}

// appendCommit records a commit with a fresh hash on the local history.
func appendCommit(req *git.Request, message string) (state.Snapshot, string, error) {
	op := req.NewOperation(state.KindCommit, message)
	op.Hash = req.Sources.Hash()
	return appendLocal(req, op), fmt.Sprintf("[%s %s] %s", req.State.Branch, shortHash(op.Hash), message), nil
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
