package launcher

import "path/filepath"

// ManifestName is the fixed manifest filename expected next to the launcher.
const ManifestName = "Cargo.toml"

// ManifestPath joins a normalized directory with the fixed manifest filename.
// Pure string construction: no filesystem access happens here.
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestName)
}
