package cmd

import (
	"context"
	"fmt"

	"github.com/mattdh/lic-cli/internal/adapters/render"
	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newQueryCmd(app *app) *cobra.Command {
	var periodFlag string
	var from string
	var to string
	var user string
	var mode string
	var status string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query raw attendance data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := domain.QueryFilter{
				Period: domain.Period(periodFlag),
				From:   from,
				To:     to,
				User:   user,
				Mode:   mode,
				Status: domain.Status(status),
				Limit:  limit,
			}

			var results []domain.QueryResult
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Querying data...", func(ctx context.Context) error {
				fetched, err := app.service.Query(ctx, filter)
				results = fetched
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, results)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.QueryResults(results))
			return err
		},
	}

	cmd.Flags().StringVarP(&periodFlag, "period", "p", string(domain.PeriodDay), "Query period: day, week or month")
	cmd.Flags().StringVarP(&from, "from", "f", "", "Start date as YYYY-MM-DD")
	cmd.Flags().StringVarP(&to, "to", "t", "", "End date as YYYY-MM-DD")
	cmd.Flags().StringVarP(&user, "user", "u", "", "Filter on one username")
	cmd.Flags().StringVarP(&mode, "mode", "m", domain.DefaultMode, "Scoring mode, e.g. last-in or early-bird")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter on one status")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of rows (0 for no limit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
