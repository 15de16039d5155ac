// Package manifest reads Cargo.toml for diagnostic output only. The launch
// path never interprets the manifest; its schema belongs to the build tool.
package manifest
