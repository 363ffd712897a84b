package cli

import (
	"errors"
	"fmt"
	"io"
)

// ExitError asks main to exit with Code without printing anything; the
// command has already reported the outcome.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Exit reports err on w in the "name: message" form and returns the
// process exit code: 0 for nil, the carried code for an ExitError and
// 1 otherwise.
func Exit(w io.Writer, name string, err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	fmt.Fprintf(w, "%s: %v\n", name, err)
	return 1
}
