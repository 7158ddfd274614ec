// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/gha-validator/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// Vertices are kept on an in-memory tape that WriteReport reads back.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder

	mu     sync.Mutex
	seen   map[string]int
	closed bool
}

// New creates a new Recorder with an in-memory tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder writing to tape.
func NewRecorder(tape *progrock.Tape) *Recorder {
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
		seen: make(map[string]int),
	}
}

// Record starts recording a new vertex.
// Repeated names get distinct digests so each run of a unit is its own vertex.
func (r *Recorder) Record(_ context.Context, name string) ports.Vertex {
	r.mu.Lock()
	n := r.seen[name]
	r.seen[name] = n + 1
	r.mu.Unlock()

	d := digest.FromString(name)
	if n > 0 {
		d = digest.FromString(name + "#" + strconv.Itoa(n))
	}
	return &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session. It is safe to call more than once.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	return r.tape.Close()
}
