package cmd

import (
	"fmt"

	"github.com/mattdh/lic-cli/internal/application"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	var apiURL string
	var username string
	var anonymousReads bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or update the CLI configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update := application.ConfigUpdate{}
			if cmd.Flags().Changed("api-url") {
				update.APIURL = &apiURL
			}
			if cmd.Flags().Changed("username") {
				update.Username = &username
			}
			if cmd.Flags().Changed("anonymous-reads") {
				update.AnonymousReads = &anonymousReads
			}

			if update.Empty() {
				apiURL = app.session.APIURL
				username = app.session.Username
				if err := promptConfig(&apiURL, &username); err != nil {
					return err
				}
				update.APIURL = &apiURL
				update.Username = &username
			}

			session, err := app.service.UpdateConfig(cmd.Context(), update)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved (api_url=%s, username=%s)\n", session.APIURL, session.Username)
			return err
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "Service base URL")
	cmd.Flags().StringVar(&username, "username", "", "Default username")
	cmd.Flags().BoolVar(&anonymousReads, "anonymous-reads", false, "Allow read commands without a token (cookie-session deployments)")

	return cmd
}
