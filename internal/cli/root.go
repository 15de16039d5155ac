package cli

import (
	"os"

	"github.com/mlaunch-labs/mlaunch/internal/branding"
	"github.com/mlaunch-labs/mlaunch/internal/config"
	"github.com/mlaunch-labs/mlaunch/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` locates the directory containing its own executable and launches
the external build tool against the manifest file found there. Invoked with
no arguments it behaves as a plain launcher; subcommands cover diagnostics,
configuration, and self-update.`,
	Args:          cobra.NoArgs,
	RunE:          runLaunch,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Keep the child tool's streams pristine: no banner around a launch,
		// and none for commands that manage their own output.
		switch cmd.Name() {
		case branding.CLIName(), "launch", "update", "self-update", "version":
			return
		}

		config.Load()
		if config.GetBool(config.KeyBannerDisable) {
			return
		}

		// Non-blocking banner from the cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
