package cmd

import (
	"context"
	"fmt"

	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" || password == "" {
				if err := promptCredentials(&username, &password, app.session.Username); err != nil {
					return err
				}
			}

			var session domain.Session
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Logging in...", func(ctx context.Context) error {
				updated, err := app.service.Login(ctx, username, password)
				session = updated
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.Username)
			return err
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (prompted when omitted)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")

	return cmd
}
