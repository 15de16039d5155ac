// Package toolchain dispatches launches to the external build/run tool.
//
// The launch contract is deliberately thin: the tool receives a manifest path,
// inherits the launcher's standard streams untouched, and reports success or
// failure through its exit code. Nothing is captured, retried, or translated.
package toolchain
