// Package cli wires configuration, logging and the simulator front-ends into cobra commands.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kurobon/gitflowsim/internal/config"
	"github.com/kurobon/gitflowsim/internal/logging"
)

// app is the state shared by every subcommand once the root has run.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *slog.Logger
	logCloser  io.Closer
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "gitflowsim",
		Short: "GitFlowSim is a sandbox for practicing commit, branch, push and pull workflows",
		Long: `GitFlowSim simulates a local repository and its origin/main side by side.
Type git commands and watch both histories change, including rejected pushes
when a teammate gets there first.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "also write logs to this file, rotated")
	flags.String("mission-dir", "", "directory of mission YAML files (default: built-in missions)")
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log_file", flags.Lookup("log-file"))
	_ = a.v.BindPFlag("mission_dir", flags.Lookup("mission-dir"))

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newMissionsCmd(a))

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Console: a.console(cmd),
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logCloser = closer
	return nil
}

// console is where log records go: stderr for the server, nowhere for the
// REPL so they do not interleave with the prompt.
func (a *app) console(cmd *cobra.Command) io.Writer {
	if cmd.Name() == "repl" {
		return nil
	}
	return cmd.ErrOrStderr()
}
