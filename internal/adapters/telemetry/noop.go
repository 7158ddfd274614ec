// Package telemetry holds telemetry adapters that need no recording backend.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/gha-validator/internal/core/ports"
)

// NoOpTelemetry is a no-op implementation of ports.Telemetry.
type NoOpTelemetry struct{}

// NewNoOp creates a new NoOpTelemetry.
func NewNoOp() *NoOpTelemetry {
	return &NoOpTelemetry{}
}

// Record returns a vertex that discards everything.
func (t *NoOpTelemetry) Record(_ context.Context, _ string) ports.Vertex {
	return NoOpVertex{}
}

// WriteReport does nothing.
func (t *NoOpTelemetry) WriteReport(_ string) error {
	return nil
}

// Close does nothing.
func (t *NoOpTelemetry) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout returns io.Discard.
func (NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (NoOpVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (NoOpVertex) Complete(_ error) {}
