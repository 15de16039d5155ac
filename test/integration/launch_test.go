//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLaunch_InvokesToolWithManifestPath(t *testing.T) {
	env := installLauncher(t, `echo "$@"`)

	stdout, stderr, code := runLauncher(t, env)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}

	want := "run -q --manifest-path " + filepath.Join(env.ScriptDir, "Cargo.toml")
	if got := strings.TrimSpace(stdout); got != want {
		t.Errorf("tool invoked with %q, want %q", got, want)
	}
}

func TestLaunch_ExitCodePropagation(t *testing.T) {
	env := installLauncher(t, "exit 42")

	_, _, code := runLauncher(t, env)
	if code != 42 {
		t.Errorf("exit code %d, want 42", code)
	}
}

func TestLaunch_ChildStderrPassthrough(t *testing.T) {
	env := installLauncher(t, `echo "manifest error" >&2; exit 101`)

	stdout, stderr, code := runLauncher(t, env)
	if code != 101 {
		t.Errorf("exit code %d, want 101", code)
	}
	if !strings.Contains(stderr, "manifest error") {
		t.Errorf("stderr %q should contain the child's message", stderr)
	}
	// No launcher noise on stdout around the child's streams.
	if stdout != "" {
		t.Errorf("expected empty stdout, got %q", stdout)
	}
}

func TestLaunch_ToolMissing(t *testing.T) {
	env := installLauncher(t, "") // no stub cargo installed

	_, stderr, code := runLauncher(t, env)
	if code == 0 {
		t.Fatal("expected non-zero exit when the tool is absent")
	}
	if !strings.Contains(stderr, "cargo") {
		t.Errorf("stderr %q should mention the missing tool", stderr)
	}
}

func TestLaunch_WorkingDirIndependent(t *testing.T) {
	env := installLauncher(t, `echo "$@"`)

	first, _, _ := runLauncher(t, env)
	second, _, _ := runLauncher(t, env)
	if first != second {
		t.Errorf("manifest path varies with working directory: %q vs %q", first, second)
	}
}

func TestLaunch_ProfileDisablesQuiet(t *testing.T) {
	env := installLauncher(t, `echo "$@"`)
	writeFile(t, filepath.Join(env.ScriptDir, "launch.yaml"), "quiet: false\n")

	stdout, stderr, code := runLauncher(t, env)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if strings.Contains(stdout, "-q") {
		t.Errorf("quiet flag passed despite quiet: false, args: %q", stdout)
	}
}

func TestLaunch_InvalidProfileFailsFast(t *testing.T) {
	env := installLauncher(t, `echo "should not run"`)
	writeFile(t, filepath.Join(env.ScriptDir, "launch.yaml"), "args: [--release]\n")

	stdout, _, code := runLauncher(t, env)
	if code == 0 {
		t.Fatal("expected non-zero exit for invalid profile")
	}
	if strings.Contains(stdout, "should not run") {
		t.Error("tool was launched despite an invalid profile")
	}
}

func TestLaunch_MinToolVersionBlocks(t *testing.T) {
	env := installLauncher(t, `if [ "$1" = "--version" ]; then echo "cargo 1.60.0"; exit 0; fi; echo "should not run"`)
	writeFile(t, filepath.Join(env.ScriptDir, "launch.yaml"), "min_tool_version: 1.75.0\n")

	stdout, stderr, code := runLauncher(t, env)
	if code == 0 {
		t.Fatal("expected non-zero exit when the tool is below the version floor")
	}
	if strings.Contains(stdout, "should not run") {
		t.Error("tool was launched despite failing the version floor")
	}
	if !strings.Contains(stderr, "1.75.0") {
		t.Errorf("stderr %q should mention the required version", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	env := installLauncher(t, "")

	stdout, stderr, code := runLauncher(t, env, "version", "--json")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	for _, key := range []string{"version", "commit", "date"} {
		if !strings.Contains(stdout, key) {
			t.Errorf("version --json output %q missing %q", stdout, key)
		}
	}
}

func TestDoctor_AllChecksPass(t *testing.T) {
	env := installLauncher(t, `if [ "$1" = "--version" ]; then echo "cargo 1.82.0 (abc 2024-01-01)"; exit 0; fi`)

	stdout, stderr, code := runLauncher(t, env, "doctor")
	if code != 0 {
		t.Fatalf("exit code %d, stdout: %s, stderr: %s", code, stdout, stderr)
	}
	if !strings.Contains(stdout, "[ OK ] launcher directory") {
		t.Errorf("doctor output missing directory check:\n%s", stdout)
	}
	if !strings.Contains(stdout, "cargo 1.82.0") {
		t.Errorf("doctor output missing tool version:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Cargo.toml") {
		t.Errorf("doctor output missing manifest check:\n%s", stdout)
	}
}

func TestDoctor_MissingManifest(t *testing.T) {
	env := installLauncher(t, `if [ "$1" = "--version" ]; then echo "cargo 1.82.0"; exit 0; fi`)
	if err := os.Remove(filepath.Join(env.ScriptDir, "Cargo.toml")); err != nil {
		t.Fatal(err)
	}

	stdout, _, code := runLauncher(t, env, "doctor")
	if code == 0 {
		t.Fatal("expected doctor to fail without a manifest")
	}
	if !strings.Contains(stdout, "[FAIL] manifest") {
		t.Errorf("doctor output missing manifest failure:\n%s", stdout)
	}
}
