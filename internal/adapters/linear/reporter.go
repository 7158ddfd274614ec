// Package linear provides a synchronous, line-oriented console reporter.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/gha-validator/internal/core/domain"
	"go.trai.ch/gha-validator/internal/ui/output"
)

// Reporter implements ports.Reporter. Progress goes to stdout, failures to stderr.
type Reporter struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
}

// NewReporter creates a new Reporter. Nil writers default to os.Stdout and os.Stderr.
func NewReporter(stdout, stderr io.Writer) *Reporter {
	r := &Reporter{}
	r.SetOutput(stdout, stderr)
	return r
}

// SetOutput replaces the destination writers.
func (r *Reporter) SetOutput(stdout, stderr io.Writer) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stdout = stdout
	r.stderr = stderr
	r.out = output.New(stdout)
}

// ValidationStarted prints "Validating: <label> <path>" with the label in magenta.
func (r *Reporter) ValidationStarted(label, displayPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := r.out.String(label).Foreground(termenv.ANSIMagenta).String()
	_, _ = fmt.Fprintf(r.stdout, "Validating: %s %s\n", name, displayPath)
}

// ValidationFailed prints the failure reason for an entry.
func (r *Reporter) ValidationFailed(o domain.ValidationOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	label := o.Entry.Label
	switch o.Status {
	case domain.StatusValid:
		return
	case domain.StatusMissing:
		_, _ = fmt.Fprintf(r.stderr, "%s: File does not exist -> %s\n", label, o.AbsPath)
	case domain.StatusEmpty:
		_, _ = fmt.Fprintf(r.stderr, "%s: File is empty -> %s\n", label, o.AbsPath)
	default:
		_, _ = fmt.Fprintf(r.stderr, "%s: DOM parse error -> %s\n", label, errorMessage(o.Err))
	}
}

// InstallStarted prints "Installing node_modules in: <dir> -> <abs>".
func (r *Reporter) InstallStarted(dir, absPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stdout, "Installing node_modules in: %s -> %s\n", dir, absPath)
}

// InstallFailed prints "Install failed for: <dir> - <reason>".
func (r *Reporter) InstallFailed(o domain.InstallOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Install failed for: %s - %s\n", o.Dir, errorMessage(o.Err))
}

func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
