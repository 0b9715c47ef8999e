package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/tui"
)

// TeammateLine triggers a teammate push in the line-oriented REPL.
const TeammateLine = "teammate"

func newReplCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Practice in the terminal",
		Long: `Practice in the terminal.

On a terminal this opens an interactive view of both histories; ctrl+t makes a
teammate push. When input is piped, commands are read one per line and the
line "teammate" makes a teammate push.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := git.NewSession()
			a.logger.Debug("REPL session started", "session", sess.ID)

			if !plain && tui.IsTTY() {
				return tui.Run(cmd.Context(), sess)
			}
			return RunLines(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), sess)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "use the line-oriented REPL even on a terminal")
	return cmd
}

// RunLines reads one command per line from in and writes the feedback of each to out.
func RunLines(ctx context.Context, in io.Reader, out io.Writer, sess *git.Session) error {
	scanner := bufio.NewScanner(in)
	prompt := func() {
		fmt.Fprintf(out, "(%s) $ ", sess.Snapshot().Branch)
	}

	prompt()
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "exit", "quit":
			fmt.Fprintln(out)
			return nil
		case TeammateLine:
			fmt.Fprintln(out, git.SimulateTeammatePush(ctx, sess))
		default:
			fmt.Fprintln(out, git.Execute(ctx, sess, line))
		}
		prompt()
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
