// Package launcher resolves the directory containing the running executable
// and derives the manifest path handed to the external build tool.
//
// Resolution is working-directory independent: it always starts from
// os.Executable, never from the process CWD.
package launcher
