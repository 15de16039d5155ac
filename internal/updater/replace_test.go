package updater

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")

	if err := os.WriteFile(src, []byte("binary contents"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := copyFile(src, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "binary contents" {
		t.Errorf("copied contents = %q, want original", data)
	}
}

func TestRollbackBinary(t *testing.T) {
	dir := t.TempDir()
	backup := filepath.Join(dir, "mlaunch.backup")
	current := filepath.Join(dir, "mlaunch")

	if err := os.WriteFile(backup, []byte("old binary"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(current, []byte("broken binary"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := RollbackBinary(backup, current); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(current)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "old binary" {
		t.Errorf("current binary = %q, want the backup restored", data)
	}
	if _, err := os.Stat(backup); !os.IsNotExist(err) {
		t.Error("backup should be consumed by the rollback")
	}
}
