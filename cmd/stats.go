package cmd

import (
	"context"
	"fmt"

	"github.com/mattdh/lic-cli/internal/adapters/render"
	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *app) *cobra.Command {
	var user string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for one user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username := user
			if username == "" {
				username = app.session.Username
			}

			var stats domain.StatsResponse
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching statistics...", func(ctx context.Context) error {
				fetched, err := app.service.UserStats(ctx, username)
				stats = fetched
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, stats)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Stats(username, stats))
			return err
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Username (defaults to the configured user)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
