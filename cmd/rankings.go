package cmd

import (
	"context"
	"fmt"

	"github.com/mattdh/lic-cli/internal/adapters/render"
	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRankingsCmd(app *app) *cobra.Command {
	var periodFlag string
	var date string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Show the championship rankings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			period, err := domain.ParsePeriod(periodFlag)
			if err != nil {
				return err
			}

			var rankings []domain.Ranking
			err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching rankings...", func(ctx context.Context) error {
				fetched, err := app.service.Rankings(ctx, period, date)
				rankings = fetched
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, rankings)
			}

			shown := date
			if shown == "" {
				shown = domain.FormatDate(app.clock.Now())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Rankings(rankings, period, shown))
			return err
		},
	}

	cmd.Flags().StringVarP(&periodFlag, "period", "p", string(domain.PeriodDay), "Ranking period: day, week or month")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date as YYYY-MM-DD (defaults to today on the server)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
