// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"go.trai.ch/xambuild/internal/core/domain"
	"go.trai.ch/xambuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// interruptGrace is how long a cancelled child gets to exit after the
// interrupt before it is killed.
const interruptGrace = 5 * time.Second

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor that streams child output to stdout and stderr.
func NewExecutor(stdout, stderr io.Writer) *Executor {
	return &Executor{
		stdin:  os.Stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// WithStdin sets the reader connected to the child's standard input.
func (e *Executor) WithStdin(r io.Reader) *Executor {
	e.stdin = r
	return e
}

// Run executes the command and waits for it to exit.
//
// The child inherits the process environment. Its exit code is carried in a
// *domain.ExitError so it can be propagated unchanged.
func (e *Executor) Run(ctx context.Context, c domain.Command) error {
	if ctx.Err() != nil {
		return domain.Interrupted(c.String())
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // user provided command
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	// Interrupt first; WaitDelay kills a child that ignores it.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = interruptGrace

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return domain.Interrupted(c.String())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal that was not ours.
			code = 1
		}
		return domain.NewExitError(code, zerr.With(zerr.With(domain.ErrCommandFailed,
			"command", c.String()),
			"exit_code", code))
	}

	return domain.NewExitError(domain.ExitNotStarted,
		zerr.With(zerr.Wrap(err, domain.ErrCommandNotStarted.Error()), "command", c.Name))
}
