package updater

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/mlaunch-labs/mlaunch/internal/branding"
)

// ArchiveName returns the expected release archive filename for the current
// platform. Matches the GoReleaser template: <cli>_{os}_{arch}.tar.gz
// (.zip on Windows).
func ArchiveName() string {
	ext := ".tar.gz"
	if runtime.GOOS == "windows" {
		ext = ".zip"
	}
	return fmt.Sprintf("%s_%s_%s%s", branding.CLIName(), runtime.GOOS, runtime.GOARCH, ext)
}

// BinaryName returns the binary filename inside a release archive.
func BinaryName() string {
	if runtime.GOOS == "windows" {
		return branding.CLIName() + ".exe"
	}
	return branding.CLIName()
}

// SelectAssetForPlatform finds the asset matching the current OS/arch.
func SelectAssetForPlatform(assets []Asset) (*Asset, error) {
	expected := ArchiveName()
	for i := range assets {
		if assets[i].Name == expected {
			return &assets[i], nil
		}
	}

	// Flexible fallback: look for the os_arch pattern anywhere in the name.
	pattern := fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH)
	for i := range assets {
		if strings.Contains(assets[i].Name, pattern) && isArchive(assets[i].Name) {
			return &assets[i], nil
		}
	}

	return nil, fmt.Errorf("no asset found for %s/%s (expected %s)", runtime.GOOS, runtime.GOARCH, expected)
}

func isArchive(name string) bool {
	return strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".zip")
}
