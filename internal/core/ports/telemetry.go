package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work for progress inspection.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) Vertex
	// WriteReport saves a summary of every recorded vertex to path.
	WriteReport(path string) error
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing standard output.
	Stdout() io.Writer
	// Stderr returns a writer capturing error output.
	Stderr() io.Writer
	// Complete marks the vertex finished, failed when err is non-nil.
	Complete(err error)
}
