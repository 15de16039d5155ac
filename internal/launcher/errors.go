package launcher

import "fmt"

// PathResolutionError indicates the platform could not determine the
// invocation path of the running executable. Not expected under normal
// execution on any supported platform.
type PathResolutionError struct {
	Path string
	Err  error
}

func (e *PathResolutionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("resolving launcher path %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("resolving launcher path: %v", e.Err)
}

func (e *PathResolutionError) Unwrap() error { return e.Err }

// ExitError carries a non-zero exit code from the launched tool. The launcher
// never remaps codes: main unwraps this and exits with Code verbatim.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("tool exited with code %d", e.Code)
}
