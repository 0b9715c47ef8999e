package git

import (
	"context"
	"sort"
	"strings"

	"github.com/kurobon/gitflowsim/internal/state"
)

// Request is the input of a single transition: the command line as typed,
// the state it applies to and the randomness it may draw on.
type Request struct {
	Input   string
	State   state.Snapshot
	Sources *state.Sources
}

// NewOperation builds an operation carrying a fresh ID and the request's input.
func (r *Request) NewOperation(kind state.Kind, arg string) state.Operation {
	return state.Operation{
		ID:    r.Sources.NextID(),
		Input: r.Input,
		Kind:  kind,
		Arg:   arg,
	}
}

// Command defines the interface for all simulator commands.
// Execute never mutates req.State; it returns the next snapshot.
// args[0] is the command name.
type Command interface {
	Execute(ctx context.Context, req *Request, args []string) (state.Snapshot, string, error)
	Help() string
}

// CommandFactory allows creating new instances of commands
type CommandFactory func() Command

var (
	registry      = make(map[string]CommandFactory)
	shellRegistry = make(map[string]CommandFactory)
)

// RegisterCommand registers a git subcommand factory
func RegisterCommand(name string, factory CommandFactory) {
	registry[name] = factory
}

// RegisterShellCommand registers a command typed without the "git" prefix
func RegisterShellCommand(name string, factory CommandFactory) {
	shellRegistry[name] = factory
}

// Dispatch runs a registered git subcommand.
func Dispatch(ctx context.Context, req *Request, cmdName string, args []string) (state.Snapshot, string, error) {
	factory, ok := registry[cmdName]
	if !ok {
		return req.State, "", &UnknownSubcommandError{Name: cmdName}
	}
	return factory().Execute(ctx, req, args)
}

// Apply interprets one command line against st and returns the next state and
// the feedback to show. Failures leave st untouched and come back as an
// "Error: " line; Apply never fails.
func Apply(ctx context.Context, st state.Snapshot, src *state.Sources, line string) (state.Snapshot, string) {
	raw := strings.TrimSpace(line)
	req := &Request{Input: raw, State: st, Sources: src}

	// Shell commands take no arguments; anything longer falls through to the git parser.
	if fields := strings.Fields(raw); len(fields) == 1 {
		if factory, ok := shellRegistry[fields[0]]; ok {
			return finish(st)(factory().Execute(ctx, req, fields))
		}
	}

	p, err := ParseCommand(raw)
	if err != nil {
		return st, Feedback(err)
	}

	name := p.Command
	switch name {
	case "", "-h", "--help":
		name = "help"
	case "-v", "--version":
		name = "version"
	}
	args := append([]string{name}, p.Args...)
	return finish(st)(Dispatch(ctx, req, name, args))
}

func finish(prev state.Snapshot) func(state.Snapshot, string, error) (state.Snapshot, string) {
	return func(next state.Snapshot, out string, err error) (state.Snapshot, string) {
		if err != nil {
			return prev, Feedback(err)
		}
		return next, out
	}
}

// Execute applies a command line to a session and records it in the reflog.
func Execute(ctx context.Context, s *Session, line string) string {
	_, out := ExecuteSnapshot(ctx, s, line)
	return out
}

// ExecuteSnapshot is Execute that also returns the state the command produced,
// read under the same lock.
func ExecuteSnapshot(ctx context.Context, s *Session, line string) (state.Snapshot, string) {
	s.Lock()
	defer s.Unlock()

	next, out := Apply(ctx, s.State, s.Sources, line)
	s.State = next
	s.RecordReflog(strings.TrimSpace(line), out)
	return next.Clone(), out
}

// GetSupportedCommands returns all registered git subcommands, sorted
func GetSupportedCommands() []string {
	cmds := make([]string, 0, len(registry))
	for k := range registry {
		cmds = append(cmds, k)
	}
	sort.Strings(cmds)
	return cmds
}

// GetCommandHelp returns the help string for a command
func GetCommandHelp(name string) (string, error) {
	factory, ok := registry[name]
	if !ok {
		factory, ok = shellRegistry[name]
	}
	if !ok {
		return "", &UnknownSubcommandError{Name: name}
	}
	return factory().Help(), nil
}
