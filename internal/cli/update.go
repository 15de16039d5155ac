package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mlaunch-labs/mlaunch/internal/branding"
	"github.com/mlaunch-labs/mlaunch/internal/config"
	"github.com/mlaunch-labs/mlaunch/internal/updater"
	"github.com/spf13/cobra"
)

var (
	updateCheck   bool
	updateForce   bool
	updateVersion string
)

func init() {
	updateCmd.Flags().BoolVar(&updateCheck, "check", false, "Only check for updates, don't install")
	updateCmd.Flags().BoolVar(&updateForce, "force", false, "Force update even if already on latest version")
	updateCmd.Flags().StringVar(&updateVersion, "version", "", "Install a specific version (e.g., 1.2.0)")

	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:     "update",
	Aliases: []string{"self-update"},
	Short:   "Update the launcher to the latest version",
	Long: `Downloads and installs the latest launcher release from GitHub
or a configured mirror.

  ` + branding.CLIName() + ` update                  # update to latest
  ` + branding.CLIName() + ` update --check          # check only
  ` + branding.CLIName() + ` update --version 1.2.0  # install specific version`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve mirror from config or env var.
		config.Load()
		mirror := config.Get(config.KeyMirror)
		if envMirror := os.Getenv(branding.EnvVar("MIRROR")); envMirror != "" {
			mirror = envMirror
		}

		var opts []updater.Option
		if mirror != "" {
			opts = append(opts, updater.WithMirror(mirror))
		}

		u := updater.New(buildVersion, opts...)

		var release *updater.Release
		var err error
		if updateVersion != "" {
			fmt.Fprintf(os.Stderr, "Checking for version %s...\n", updateVersion)
			release, err = u.CheckSpecificVersion(updateVersion)
		} else {
			fmt.Fprintln(os.Stderr, "Checking for updates...")
			release, err = u.CheckLatestVersion()
		}
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}

		available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
		if err != nil {
			// A "dev" build has no semver; treat it as always updateable.
			if buildVersion == "dev" {
				available = true
			} else {
				return fmt.Errorf("comparing versions: %w", err)
			}
		}

		if updateCheck {
			if available {
				fmt.Printf("Update available: %s -> %s\n", buildVersion, release.Version)
			} else {
				fmt.Printf("You are on the latest version (%s)\n", buildVersion)
			}
			return nil
		}

		if !available && !updateForce {
			fmt.Printf("You are on the latest version (%s)\n", buildVersion)
			return nil
		}

		fmt.Fprintf(os.Stderr, "Downloading %s %s for %s/%s...\n", branding.CLIName(), release.Version, runtime.GOOS, runtime.GOARCH)

		tmpDir, err := os.MkdirTemp("", branding.CLIName()+"-update-*")
		if err != nil {
			return fmt.Errorf("creating temp directory: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		archivePath, err := u.DownloadBinary(release, tmpDir)
		if err != nil {
			return fmt.Errorf("downloading binary: %w", err)
		}

		fmt.Fprintln(os.Stderr, "Verifying checksum...")
		if err := u.VerifyChecksum(release, archivePath); err != nil {
			return fmt.Errorf("checksum verification failed: %w", err)
		}

		binPath, err := updater.ExtractBinary(archivePath, tmpDir)
		if err != nil {
			return fmt.Errorf("extracting binary: %w", err)
		}

		fmt.Fprintln(os.Stderr, "Installing...")
		currentBinary, err := os.Executable()
		if err != nil {
			return fmt.Errorf("finding current binary: %w", err)
		}

		if err := updater.ReplaceBinary(binPath, currentBinary, release.Version); err != nil {
			return err
		}

		_ = updater.SaveCache(config.Dir(), &updater.VersionCache{
			LatestVersion:   release.Version,
			CurrentVersion:  release.Version,
			UpdateAvailable: false,
		})

		fmt.Printf("Successfully updated to %s\n", release.Version)
		return nil
	},
}
