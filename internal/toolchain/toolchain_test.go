package toolchain

import (
	"context"
	"testing"
)

func TestDispatch_Cargo(t *testing.T) {
	tool := Dispatch("cargo")
	if _, ok := tool.(*CargoTool); !ok {
		t.Errorf("Dispatch(\"cargo\") returned %T, want *CargoTool", tool)
	}
}

func TestDispatch_Unknown(t *testing.T) {
	tool := Dispatch("bazel")
	if _, ok := tool.(*unknownTool); !ok {
		t.Errorf("Dispatch(\"bazel\") returned %T, want *unknownTool", tool)
	}

	// Verify it refuses to launch.
	if _, err := tool.Launch(context.Background(), "Cargo.toml", DefaultOptions()); err == nil {
		t.Error("expected error from unknown tool launch, got nil")
	}
	if _, err := tool.Version(context.Background()); err == nil {
		t.Error("expected error from unknown tool version, got nil")
	}
}

func TestDefaultOptions(t *testing.T) {
	if !DefaultOptions().Quiet {
		t.Error("default options should suppress the tool banner")
	}
}

func TestParseToolVersion(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    string
		wantErr bool
	}{
		{"full banner", "cargo 1.82.0 (8f40fc59f 2024-08-21)\n", "1.82.0", false},
		{"bare version", "cargo 1.75.0", "1.75.0", false},
		{"nightly banner", "cargo 1.84.0-nightly (031049782 2024-11-01)", "1.84.0-nightly", false},
		{"empty output", "", "", true},
		{"tool name only", "cargo\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseToolVersion(tt.out)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseToolVersion(%q) expected error, got %q", tt.out, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseToolVersion(%q) = %q, want %q", tt.out, got, tt.want)
			}
		})
	}
}
