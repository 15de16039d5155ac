package launcher

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestManifestPath(t *testing.T) {
	dir := filepath.Join(string(filepath.Separator)+"opt", "tool")
	got := ManifestPath(dir)
	want := filepath.Join(dir, "Cargo.toml")
	if got != want {
		t.Errorf("ManifestPath(%q) = %q, want %q", dir, got, want)
	}
}

func TestManifestPath_NoDuplicatedSeparator(t *testing.T) {
	raw := string(filepath.Separator) + "opt" + string(filepath.Separator) + "tool" + string(filepath.Separator)
	dir := NormalizeDir(raw)
	got := ManifestPath(dir)

	double := string(filepath.Separator) + string(filepath.Separator)
	if strings.Contains(got, double) {
		t.Errorf("ManifestPath(%q) = %q contains a duplicated separator", dir, got)
	}
	if !strings.HasSuffix(got, string(filepath.Separator)+ManifestName) {
		t.Errorf("ManifestPath(%q) = %q does not end in %q", dir, got, ManifestName)
	}
}

func TestManifestPath_Idempotent(t *testing.T) {
	dir := NormalizeDir(filepath.Join(string(filepath.Separator)+"opt", "tool"))
	if first, second := ManifestPath(dir), ManifestPath(dir); first != second {
		t.Errorf("manifest path not stable: %q vs %q", first, second)
	}
}
