// Package installer runs production dependency installs for the configured directories.
package installer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/gha-validator/internal/core/domain"
	"go.trai.ch/gha-validator/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options tunes a single Run.
type Options struct {
	// Jobs bounds how many installs run at once. Values below 1 mean 1.
	Jobs int
	// Timeout limits each install. Zero disables the limit.
	Timeout time.Duration
	// Command overrides domain.DefaultInstallCommand when non-empty.
	Command []string
}

// Installer removes lockfiles and runs the install command in each directory.
type Installer struct {
	executor  ports.Executor
	reporter  ports.Reporter
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Installer.
func New(
	executor ports.Executor,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Installer {
	return &Installer{
		executor:  executor,
		reporter:  reporter,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run installs every directory and returns one outcome per directory, in list order.
// A failed install never stops the others.
func (i *Installer) Run(ctx context.Context, root string, dirs []string, opts Options) domain.InstallReport {
	report := make(domain.InstallReport, len(dirs))
	if len(dirs) == 0 {
		return report
	}

	command := opts.Command
	if len(command) == 0 {
		command = domain.DefaultInstallCommand
	}

	var g errgroup.Group
	g.SetLimit(max(opts.Jobs, 1))

	for idx, dir := range dirs {
		g.Go(func() error {
			report[idx] = i.install(ctx, root, dir, command, opts.Timeout)
			return nil
		})
	}

	_ = g.Wait()
	return report
}

func (i *Installer) install(
	ctx context.Context,
	root, dir string,
	command []string,
	timeout time.Duration,
) domain.InstallOutcome {
	abs := domain.ResolvePath(root, dir)
	outcome := domain.InstallOutcome{Dir: dir, AbsPath: abs}

	RemoveLockfiles(abs)
	i.reporter.InstallStarted(dir, abs)

	vertex := i.telemetry.Record(ctx, "install "+dir)

	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := domain.Command{Name: command[0], Args: command[1:], Dir: abs}
	err := i.executor.Execute(runCtx, cmd, vertex.Stdout(), vertex.Stderr())
	if err != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		err = zerr.With(zerr.Wrap(domain.ErrInstallTimeout, err.Error()), "timeout", timeout.String())
	}
	vertex.Complete(err)

	if err != nil {
		outcome.Status = domain.InstallFailed
		outcome.Err = zerr.With(err, "dir", dir)
		i.reporter.InstallFailed(outcome)
		return outcome
	}

	outcome.Status = domain.InstallSucceeded
	i.logger.Info("installed " + dir)
	return outcome
}

// RemoveLockfiles deletes every domain.Lockfiles entry in dir.
// Absent files and removal errors are ignored, so repeated calls are harmless.
func RemoveLockfiles(dir string) {
	for _, name := range domain.Lockfiles {
		_ = os.Remove(filepath.Join(dir, name))
	}
}
