package cmd

import (
	"context"
	"fmt"

	"github.com/mattdh/lic-cli/internal/adapters/render"
	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newStreaksCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "streaks",
		Short: "Show attendance streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var streaks []domain.Streak
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching streaks...", func(ctx context.Context) error {
				fetched, err := app.service.Streaks(ctx)
				streaks = fetched
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, streaks)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Streaks(streaks))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
