package cli

import (
	"fmt"
	"os"

	"github.com/mlaunch-labs/mlaunch/internal/config"
	"github.com/mlaunch-labs/mlaunch/internal/launcher"
	"github.com/mlaunch-labs/mlaunch/internal/manifest"
	"github.com/mlaunch-labs/mlaunch/internal/profile"
	"github.com/mlaunch-labs/mlaunch/internal/toolchain"
	"github.com/mlaunch-labs/mlaunch/internal/updater"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the launcher installation",
	Long: `Run diagnostic checks: launcher directory resolution, build tool
availability and version, manifest presence, and launch profile validity.
Nothing doctor reports affects a launch; it only explains what one would do.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := false

		scriptDir, err := launcher.ResolveScriptDir()
		if err != nil {
			fmt.Printf("[FAIL] launcher directory: %v\n", err)
			return fmt.Errorf("launcher directory could not be resolved")
		}
		fmt.Printf("[ OK ] launcher directory: %s\n", scriptDir)

		prof, err := profile.Load(scriptDir)
		if err != nil {
			fmt.Printf("[FAIL] launch profile: %v\n", err)
			failed = true
			prof = profile.Default()
		} else if _, statErr := os.Stat(profile.Path(scriptDir)); statErr == nil {
			fmt.Printf("[ OK ] launch profile: %s is valid\n", profile.Path(scriptDir))
		} else {
			fmt.Printf("[INFO] launch profile: none, using defaults (%s, quiet)\n", prof.Tool)
		}

		if !checkTool(cmd, prof) {
			failed = true
		}
		if !checkManifest(scriptDir) {
			failed = true
		}

		if dir := config.Dir(); dirExists(dir) {
			fmt.Printf("[ OK ] config directory: %s\n", dir)
		} else {
			fmt.Printf("[INFO] config directory: %s (not created yet)\n", dir)
		}

		if failed {
			return fmt.Errorf("doctor found problems")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func checkTool(cmd *cobra.Command, prof *profile.Profile) bool {
	tool := toolchain.Dispatch(prof.Tool)

	version, err := tool.Version(cmd.Context())
	if err != nil {
		fmt.Printf("[FAIL] build tool: %v\n", err)
		return false
	}
	fmt.Printf("[ OK ] build tool: %s %s\n", tool.Name(), version)

	if prof.MinToolVersion == "" {
		return true
	}
	ok, err := updater.MeetsMinimum(version, prof.MinToolVersion)
	if err != nil {
		fmt.Printf("[WARN] version floor: %v\n", err)
		return true
	}
	if !ok {
		fmt.Printf("[FAIL] version floor: %s %s is below required %s\n", tool.Name(), version, prof.MinToolVersion)
		return false
	}
	fmt.Printf("[ OK ] version floor: %s >= %s\n", version, prof.MinToolVersion)
	return true
}

func checkManifest(scriptDir string) bool {
	manifestPath := launcher.ManifestPath(scriptDir)
	if !manifest.Exists(manifestPath) {
		fmt.Printf("[FAIL] manifest: %s not found\n", manifestPath)
		return false
	}

	info, err := manifest.Describe(manifestPath)
	if err != nil {
		fmt.Printf("[WARN] manifest: present but unreadable: %v\n", err)
		return true
	}

	switch {
	case info.Workspace && info.Package.Name == "":
		fmt.Printf("[ OK ] manifest: %s (workspace)\n", manifestPath)
	case info.Package.Edition != "":
		fmt.Printf("[ OK ] manifest: %s (%s v%s, edition %s)\n", manifestPath, info.Package.Name, info.Package.Version, info.Package.Edition)
	default:
		fmt.Printf("[ OK ] manifest: %s (%s v%s)\n", manifestPath, info.Package.Name, info.Package.Version)
	}
	return true
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
