// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/xambuild/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes cmd and blocks until it exits.
	//
	// A nonzero exit is returned as a *domain.ExitError carrying the command's
	// own exit code. Cancellation of ctx while the command runs is returned as
	// a *domain.ExitError with domain.ExitInterrupted.
	Run(ctx context.Context, cmd domain.Command) error
}
