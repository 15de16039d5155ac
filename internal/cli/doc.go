// Package cli wires the cobra command tree. The root command with no
// arguments is the launcher itself; subcommands cover diagnostics, config,
// version info, and self-update.
package cli
