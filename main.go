package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mlaunch-labs/mlaunch/internal/cli"
	"github.com/mlaunch-labs/mlaunch/internal/launcher"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// A non-zero child exit is not a launcher failure: the child already
		// wrote its own diagnostics, so exit with its code and nothing else.
		var exitErr *launcher.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
