package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbose bool
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "lic",
		Short:         "Last-In Championship CLI",
		Long:          "lic tracks office attendance against the Last-In Championship server: log your day, then see who is winning the rankings, streaks and statistics.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd.Context(), configPath, verbose)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: <user config dir>/lic/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogCmd(app),
		newRankingsCmd(app),
		newStreaksCmd(app),
		newStatsCmd(app),
		newQueryCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
