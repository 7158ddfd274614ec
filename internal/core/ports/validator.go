package ports

import (
	"context"

	"go.trai.ch/gha-validator/internal/core/domain"
)

// Validator checks a single build artifact.
//
//go:generate mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type Validator interface {
	// Validate resolves entry.Path against root and checks the file.
	// Failures are reported through the outcome, never as a Go error.
	Validate(ctx context.Context, root string, entry domain.ValidationEntry) domain.ValidationOutcome
}
