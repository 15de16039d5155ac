package toolchain

import (
	"context"
	"fmt"
)

// Tool launches the external build/run tool against a manifest file.
type Tool interface {
	// Name returns the tool identifier (e.g., "cargo").
	Name() string

	// Launch runs the tool against manifestPath and blocks until it exits.
	// The child's exit code is returned; a non-zero code is not an error.
	// The error return covers launch failures only (tool missing, spawn failed).
	Launch(ctx context.Context, manifestPath string, opts Options) (int, error)

	// Version reports the tool's version string (e.g., "1.82.0").
	Version(ctx context.Context) (string, error)
}

// Options adjusts how a tool is invoked.
type Options struct {
	// Quiet suppresses the tool's informational banner output.
	Quiet bool
}

// DefaultOptions matches the behavior of the original launcher scripts.
func DefaultOptions() Options {
	return Options{Quiet: true}
}

// Supported tool identifiers.
const (
	ToolCargo = "cargo"
)

// Dispatch returns the Tool implementation for the given identifier.
// Returns an error-producing tool for unknown values.
func Dispatch(name string) Tool {
	switch name {
	case ToolCargo:
		return &CargoTool{}
	default:
		return &unknownTool{name: name}
	}
}

// unknownTool is returned when the tool identifier is not recognized.
type unknownTool struct {
	name string
}

func (u *unknownTool) Name() string { return u.name }

func (u *unknownTool) Launch(_ context.Context, _ string, _ Options) (int, error) {
	return 0, fmt.Errorf("unknown tool %q: the only supported tool is %q", u.name, ToolCargo)
}

func (u *unknownTool) Version(_ context.Context) (string, error) {
	return "", fmt.Errorf("unknown tool %q: the only supported tool is %q", u.name, ToolCargo)
}
