package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Info summarizes a Cargo.toml for diagnostics.
type Info struct {
	Package   PackageInfo
	Workspace bool
}

// PackageInfo is the subset of [package] worth showing to a user.
type PackageInfo struct {
	Name    string
	Version string
	Edition string
}

// rawManifest mirrors just the TOML tables Describe cares about.
type rawManifest struct {
	Package *struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Edition string `toml:"edition"`
	} `toml:"package"`
	Workspace *struct{} `toml:"workspace"`
}

// Exists reports whether a manifest file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Describe reads the manifest at path and returns its summary.
func Describe(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var raw rawManifest
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	info := &Info{Workspace: raw.Workspace != nil}
	if raw.Package != nil {
		info.Package = PackageInfo{
			Name:    raw.Package.Name,
			Version: raw.Package.Version,
			Edition: raw.Package.Edition,
		}
	}

	if info.Package.Name == "" && !info.Workspace {
		return nil, fmt.Errorf("manifest %s has neither a [package] nor a [workspace] table", path)
	}
	return info, nil
}
