// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/gha-validator/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd and copies its output to stdout and stderr.
	//
	// It returns an error if the command cannot be started or exits non-zero.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
