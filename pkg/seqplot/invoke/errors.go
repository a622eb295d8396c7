package invoke

import "fmt"

// ExternalProcessFailure reports an external command that could not be
// started or exited with a non-zero status.
type ExternalProcessFailure struct {
	Command string
	// ExitStatus is the process exit code, or -1 when it never ran.
	ExitStatus int
	Err        error
}

func (e *ExternalProcessFailure) Error() string {
	if e.ExitStatus < 0 {
		return fmt.Sprintf("external command %q failed to start: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("external command %q exited with status %d", e.Command, e.ExitStatus)
}

func (e *ExternalProcessFailure) Unwrap() error {
	return e.Err
}
