//go:build integration

package integration_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// launcherPath is the binary built once in TestMain and copied per test.
var launcherPath string

func TestMain(m *testing.M) {
	if runtime.GOOS == "windows" {
		// Stub tools below are /bin/sh scripts.
		os.Exit(0)
	}

	buildDir, err := os.MkdirTemp("", "mlaunch-itest-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating build dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(buildDir)

	launcherPath = filepath.Join(buildDir, "mlaunch")
	build := exec.Command("go", "build", "-o", launcherPath, "github.com/mlaunch-labs/mlaunch")
	build.Stdout = os.Stderr
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "building launcher: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// testEnv holds the per-test launcher installation.
type testEnv struct {
	ScriptDir string // directory holding the launcher binary and Cargo.toml
	BinDir    string // directory holding the stub cargo, prepended to PATH
	HomeDir   string // isolated HOME so config/cache never leak
}

// installLauncher copies the built binary into a fresh directory next to a
// minimal Cargo.toml, and installs a stub cargo that runs the given script.
func installLauncher(t *testing.T, cargoScript string) *testEnv {
	t.Helper()

	env := &testEnv{
		ScriptDir: t.TempDir(),
		BinDir:    t.TempDir(),
		HomeDir:   t.TempDir(),
	}

	copyBinary(t, launcherPath, filepath.Join(env.ScriptDir, "mlaunch"))
	writeFile(t, filepath.Join(env.ScriptDir, "Cargo.toml"), `[package]
name = "itest"
version = "0.1.0"
edition = "2021"
`)

	if cargoScript != "" {
		writeStub(t, filepath.Join(env.BinDir, "cargo"), cargoScript)
	}

	return env
}

// runLauncher executes the installed binary from an unrelated working
// directory and returns stdout, stderr, and the exit code.
func runLauncher(t *testing.T, env *testEnv, args ...string) (string, string, int) {
	t.Helper()

	cmd := exec.Command(filepath.Join(env.ScriptDir, "mlaunch"), args...)
	cmd.Dir = t.TempDir() // resolution must not depend on the working directory
	cmd.Env = []string{
		"PATH=" + env.BinDir,
		"HOME=" + env.HomeDir,
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("running launcher: %v", err)
		}
		code = exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), code
}

func copyBinary(t *testing.T, src, dst string) {
	t.Helper()

	in, err := os.Open(src)
	if err != nil {
		t.Fatalf("opening %s: %v", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY, 0755)
	if err != nil {
		t.Fatalf("creating %s: %v", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		t.Fatalf("copying binary: %v", err)
	}
}

func writeStub(t *testing.T, path, script string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("writing stub %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
