package git

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Parsed is a tokenized git command line.
type Parsed struct {
	Command string   // second token, e.g. "commit"; empty for a bare "git"
	Args    []string // every token after the command
}

// ParseCommand tokenizes a raw line with shell quoting rules, so a quoted
// commit message is a single argument. It has no side effects.
func ParseCommand(input string) (Parsed, error) {
	tokens, err := shellquote.Split(input)
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if len(tokens) == 0 {
		return Parsed{}, ErrEmptyCommand
	}
	if tokens[0] != "git" {
		return Parsed{}, &NotGitError{Name: tokens[0]}
	}

	p := Parsed{Args: []string{}}
	if len(tokens) > 1 {
		p.Command = tokens[1]
		p.Args = tokens[2:]
	}
	return p, nil
}

// Argv returns the command followed by its arguments, the form commands receive.
func (p Parsed) Argv() []string {
	return append([]string{p.Command}, p.Args...)
}
