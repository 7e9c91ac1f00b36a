package cmd

import (
	"context"
	"fmt"

	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *app) *cobra.Command {
	var statusFlag string
	var timeFlag string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log today's attendance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.session.Username == "" {
				return fmt.Errorf("%w: no username configured, run `lic login` or `lic config --username`", domain.ErrValidation)
			}

			if statusFlag == "" {
				if err := promptStatus(&statusFlag); err != nil {
					return err
				}
			}
			status, err := domain.ParseStatus(statusFlag)
			if err != nil {
				return err
			}

			entryTime := timeFlag
			switch {
			case status.IsAbsence():
				entryTime = domain.AbsenceTime
			case entryTime == "":
				// Scripts get the current time; a terminal gets to edit it.
				entryTime = domain.FormatClock(app.clock.Now())
				if ensureInteractive() == nil {
					if err := promptTime(&entryTime, entryTime); err != nil {
						return err
					}
				}
			}

			entry := domain.AttendanceEntry{
				Date:   domain.FormatDate(app.clock.Now()),
				Time:   entryTime,
				Name:   app.session.Username,
				Status: status,
			}

			err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Logging attendance...", func(ctx context.Context) error {
				return app.service.LogAttendance(ctx, entry)
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged %s at %s for %s\n", entry.Status, entry.Time, entry.Date)
			return err
		},
	}

	cmd.Flags().StringVarP(&statusFlag, "status", "s", "", "Attendance status: in-office, remote, sick or leave (prompted when omitted)")
	cmd.Flags().StringVarP(&timeFlag, "time", "t", "", "Arrival time as HH:MM (defaults to now; forced to 00:00 for sick/leave)")

	return cmd
}
