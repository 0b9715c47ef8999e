package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/mission"
	"github.com/kurobon/gitflowsim/internal/server"
	"github.com/kurobon/gitflowsim/internal/state"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP for a browser front-end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.String("addr", "", "listen address (default :8080)")
	flags.Duration("session-ttl", 0, "idle time before a session is dropped (default 2h)")
	_ = a.v.BindPFlag("addr", flags.Lookup("addr"))
	_ = a.v.BindPFlag("session_ttl", flags.Lookup("session-ttl"))

	return cmd
}

// missionLoader picks the configured mission directory, or the built-in set.
func (a *app) missionLoader() (*mission.Loader, error) {
	if a.cfg.MissionDir != "" {
		return mission.NewDirLoader(a.cfg.MissionDir), nil
	}
	return mission.NewBuiltinLoader()
}

// newHandler assembles the HTTP API from the loaded configuration.
func (a *app) newHandler() (*server.Server, error) {
	sm := state.NewSessionManagerWithTTL(a.cfg.SessionTTL)
	loader, err := a.missionLoader()
	if err != nil {
		return nil, err
	}
	return server.NewServer(sm, mission.NewEngine(loader, sm), a.logger), nil
}

func (a *app) serve(ctx context.Context) error {
	handler, err := a.newHandler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server listening", "addr", a.cfg.Addr, "commands", len(git.GetSupportedCommands()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		a.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
