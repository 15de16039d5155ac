package cli

import (
	"fmt"

	"github.com/mlaunch-labs/mlaunch/internal/launcher"
	"github.com/mlaunch-labs/mlaunch/internal/profile"
	"github.com/mlaunch-labs/mlaunch/internal/toolchain"
	"github.com/mlaunch-labs/mlaunch/internal/updater"
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Resolve the launcher directory and run the build tool",
	Long: `Resolve the absolute directory containing this executable, join it with
the fixed manifest filename, and run the external build tool against that
manifest. The tool inherits stdin/stdout/stderr and its exit code becomes
this process's exit code.

This is also what running the bare command does.`,
	Args: cobra.NoArgs,
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	scriptDir, err := launcher.ResolveScriptDir()
	if err != nil {
		return err
	}

	manifestPath := launcher.ManifestPath(scriptDir)

	// Optional launch.yaml overrides; defaults reproduce the fixed scripts.
	prof, err := profile.Load(scriptDir)
	if err != nil {
		return err
	}

	tool := toolchain.Dispatch(prof.Tool)
	ctx := cmd.Context()

	if prof.MinToolVersion != "" {
		version, err := tool.Version(ctx)
		if err != nil {
			return fmt.Errorf("checking %s version: %w", tool.Name(), err)
		}
		ok, err := updater.MeetsMinimum(version, prof.MinToolVersion)
		if err != nil {
			return fmt.Errorf("comparing %s version: %w", tool.Name(), err)
		}
		if !ok {
			return fmt.Errorf("%s %s is below the required minimum %s", tool.Name(), version, prof.MinToolVersion)
		}
	}

	// The manifest is not stat'ed here: a missing manifest is the tool's
	// error to report, verbatim.
	code, err := tool.Launch(ctx, manifestPath, toolchain.Options{Quiet: prof.IsQuiet()})
	if err != nil {
		return err
	}
	if code != 0 {
		return &launcher.ExitError{Code: code}
	}
	return nil
}
