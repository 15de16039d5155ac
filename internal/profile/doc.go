// Package profile loads the optional launch.yaml that may sit next to the
// manifest. When the file is absent, defaults reproduce the fixed behavior of
// the original launcher scripts (cargo, quiet) exactly.
package profile
