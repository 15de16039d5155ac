package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// FileName is the optional profile filename looked up next to the manifest.
const FileName = "launch.yaml"

// Profile holds launch overrides. Zero overrides means the launcher behaves
// exactly like the original fixed-flag scripts.
type Profile struct {
	// Tool is the external build/run tool identifier. Defaults to "cargo".
	Tool string `yaml:"tool"`

	// Quiet suppresses the tool's informational banner. Defaults to true.
	Quiet *bool `yaml:"quiet"`

	// MinToolVersion is an optional semver floor checked before launching.
	MinToolVersion string `yaml:"min_tool_version"`
}

// Default returns the profile used when no launch.yaml exists.
func Default() *Profile {
	quiet := true
	return &Profile{
		Tool:  "cargo",
		Quiet: &quiet,
	}
}

// IsQuiet resolves the Quiet field with its default.
func (p *Profile) IsQuiet() bool {
	if p.Quiet == nil {
		return true
	}
	return *p.Quiet
}

// Path returns the profile path for a given script directory.
func Path(scriptDir string) string {
	return filepath.Join(scriptDir, FileName)
}

// Load reads and validates the profile next to the manifest. A missing file
// is not an error: the default profile is returned.
func Load(scriptDir string) (*Profile, error) {
	path := Path(scriptDir)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating profile %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("profile %s has %d validation issue(s): %s", path, len(result.Issues), result.Issues[0].Message)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if p.Tool == "" {
		p.Tool = Default().Tool
	}
	return p, nil
}
