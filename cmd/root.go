package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "ranch",
		Short:         "Kuroro Ranch farmer: play the ranch web app for many Telegram accounts",
		Long:          "ranch drives the Kuroro Ranch Telegram web app for every stored session: it finishes onboarding, farms, feeds, hits the energy ball, claims bonuses and buys upgrades on a randomized schedule.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", ".", "Directory holding .env, config.toml and relative data paths")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(&flags),
		newSessionCmd(&flags),
	)

	return rootCmd
}
