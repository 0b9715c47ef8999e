package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMissionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List the practice missions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := a.missionLoader()
			if err != nil {
				return err
			}
			missions, err := loader.ListMissions()
			if err != nil {
				return fmt.Errorf("failed to list missions: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, m := range missions {
				fmt.Fprintf(out, "%-16s %-5s %s\n", m.ID, strings.Repeat("★", m.Difficulty.Stars), m.Title)
			}
			return nil
		},
	}

	return cmd
}
