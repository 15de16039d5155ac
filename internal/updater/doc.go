// Package updater implements self-update from GitHub releases: a cached
// non-blocking version check for the startup banner, and the download,
// verify, extract, replace sequence behind the update command.
package updater
