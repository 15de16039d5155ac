package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CargoTool launches cargo against a Cargo.toml manifest.
type CargoTool struct {
	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process streams so the child's output reaches the caller unmodified.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (c *CargoTool) Name() string { return ToolCargo }

// Launch runs `cargo run -q --manifest-path <manifestPath>` with inherited
// standard streams and blocks until cargo exits. There is no timeout: the
// wait on the child is unbounded unless ctx is canceled.
func (c *CargoTool) Launch(ctx context.Context, manifestPath string, opts Options) (int, error) {
	cargoBin, err := exec.LookPath(ToolCargo)
	if err != nil {
		return 0, fmt.Errorf("cargo not found on PATH: %w", err)
	}

	args := []string{"run"}
	if opts.Quiet {
		args = append(args, "-q")
	}
	args = append(args, "--manifest-path", manifestPath)

	cmd := exec.CommandContext(ctx, cargoBin, args...)
	cmd.Stdin = c.stdin()
	cmd.Stdout = c.stdout()
	cmd.Stderr = c.stderr()

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("launching cargo: %w", err)
	}
	return 0, nil
}

// Version runs `cargo --version` and extracts the bare version number from
// output of the form "cargo 1.82.0 (8f40fc59f 2024-08-21)".
func (c *CargoTool) Version(ctx context.Context) (string, error) {
	cargoBin, err := exec.LookPath(ToolCargo)
	if err != nil {
		return "", fmt.Errorf("cargo not found on PATH: %w", err)
	}

	out, err := exec.CommandContext(ctx, cargoBin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("querying cargo version: %w", err)
	}

	version, err := parseToolVersion(string(out))
	if err != nil {
		return "", fmt.Errorf("parsing cargo version output %q: %w", strings.TrimSpace(string(out)), err)
	}
	return version, nil
}

// parseToolVersion extracts the second whitespace-separated field from a
// "<tool> <version> [extras]" banner line.
func parseToolVersion(out string) (string, error) {
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return "", fmt.Errorf("expected \"<tool> <version>\" banner")
	}
	return fields[1], nil
}

func (c *CargoTool) stdin() io.Reader {
	if c.Stdin != nil {
		return c.Stdin
	}
	return os.Stdin
}

func (c *CargoTool) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func (c *CargoTool) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}
