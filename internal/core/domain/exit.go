package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

// Exit codes reported by xambuild itself. Any other nonzero code is passed
// through from the wrapped tool.
const (
	ExitOK              = 0
	ExitInterrupted     = 1
	ExitUnknownPlatform = 2
	ExitProjectFile     = 3
	ExitDirNotFound     = 4
	ExitInvalidAction   = 5
	// ExitNotStarted follows the shell convention for a command that was not found.
	ExitNotStarted = 127
)

// ExitError is an error that carries the process exit code it maps to.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError wraps err with the given exit code.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code.
// A nil error is 0, an *ExitError is its Code, anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// Interrupted returns the error reported when op is cancelled by an interrupt.
func Interrupted(op string) error {
	return NewExitError(ExitInterrupted, zerr.With(ErrInterrupted, "operation", op))
}
