package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorPrefix marks a feedback line as a failure.
const ErrorPrefix = "Error: "

// Sentinel errors for every failure a command line can produce.
// Use errors.Is to classify.
var (
	ErrSyntax            = errors.New("syntax error")
	ErrNotGit            = errors.New("not a git command")
	ErrEmptyCommand      = errors.New("empty command")
	ErrUnknownSubcommand = errors.New("unknown git command")
	ErrMissingArgument   = errors.New("missing argument")
	ErrPushRejected      = errors.New("push rejected")
)

// NotGitError reports a command line whose first word is not "git".
type NotGitError struct {
	Name string
}

func (e *NotGitError) Error() string {
	return fmt.Sprintf("Command '%s' not found. Try starting with 'git'.", e.Name)
}

// Is returns true if the target error is ErrNotGit
func (e *NotGitError) Is(target error) bool {
	return target == ErrNotGit
}

// UnknownSubcommandError reports a git subcommand the simulator does not know.
type UnknownSubcommandError struct {
	Name string
}

func (e *UnknownSubcommandError) Error() string {
	return fmt.Sprintf("Unknown git command '%s'.", e.Name)
}

// Is returns true if the target error is ErrUnknownSubcommand
func (e *UnknownSubcommandError) Is(target error) bool {
	return target == ErrUnknownSubcommand
}

// MissingArgumentError reports a required branch name or message that was omitted.
type MissingArgumentError struct {
	Argument string
	Usage    string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s required. usage: %s", e.Argument, e.Usage)
}

// Is returns true if the target error is ErrMissingArgument
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// NewMissingArgumentError creates a MissingArgumentError
func NewMissingArgumentError(argument, usage string) *MissingArgumentError {
	return &MissingArgumentError{Argument: argument, Usage: usage}
}

// Feedback renders err as a user-facing error line.
func Feedback(err error) string {
	return ErrorPrefix + err.Error()
}

// IsErrorFeedback reports whether a feedback line describes a failure.
func IsErrorFeedback(feedback string) bool {
	return strings.HasPrefix(feedback, ErrorPrefix)
}
