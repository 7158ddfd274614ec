// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/gha-validator/internal/core/domain"
	"go.trai.ch/gha-validator/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs cmd in cmd.Dir with the inherited environment.
// Output is logged line by line (stdout at info, stderr at warn) and copied
// verbatim to stdout and stderr when they are non-nil.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if cmd.Name == "" {
		return zerr.New("empty command")
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // command comes from the validator config
	c.Dir = cmd.Dir

	outLog := &logWriter{emit: e.logger.Info}
	errLog := &logWriter{emit: e.logger.Warn}
	c.Stdout = tee(outLog, stdout)
	c.Stderr = tee(errLog, stderr)

	err := c.Run()
	outLog.Flush()
	errLog.Flush()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode), "command", cmd.String())
	}

	return nil
}

func tee(w io.Writer, extra io.Writer) io.Writer {
	if extra == nil {
		return w
	}
	return io.MultiWriter(w, extra)
}

// logWriter buffers partial writes and emits one log call per complete line.
type logWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(string)
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Incomplete line, keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emitLine(line)
	}
	return len(p), nil
}

// Flush emits any trailing output that did not end in a newline.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emitLine(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emitLine(line string) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return
	}
	w.emit(line)
}
