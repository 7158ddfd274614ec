// Package app implements the application layer for gha-validator.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/gha-validator/internal/core/domain"
	"go.trai.ch/gha-validator/internal/core/ports"
	"go.trai.ch/gha-validator/internal/engine/installer"
	"go.trai.ch/zerr"
)

// App sequences loading, snapshotting, validation and installs.
type App struct {
	configLoader ports.ConfigLoader
	snapshot     ports.SnapshotWriter
	validator    ports.Validator
	installer    *installer.Installer
	reporter     ports.Reporter
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// RunOptions configures a single pipeline run.
type RunOptions struct {
	// Root is the working directory; relative paths resolve against it.
	Root string
	// ConfigFile is the configuration file name inside Root.
	ConfigFile string
	// SnapshotPath is where the JSON snapshot goes. Empty disables it.
	SnapshotPath string
	// ReportPath is where the progress report goes. Empty disables it.
	ReportPath string
	// SkipInstall stops the run after the validation gate.
	SkipInstall bool
	// Jobs bounds concurrent installs.
	Jobs int
	// InstallTimeout limits each install. Zero means no limit.
	InstallTimeout time.Duration
	// InstallCommand overrides the default install command.
	InstallCommand []string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	snapshot ports.SnapshotWriter,
	validator ports.Validator,
	inst *installer.Installer,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		snapshot:     snapshot,
		validator:    validator,
		installer:    inst,
		reporter:     reporter,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Run executes the full pipeline. It returns domain.ErrValidationFailed, without
// running any install, when an entry failed. Install failures are logged only,
// unless ctx was cancelled while installing.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	defer a.closeTelemetry(opts.ReportPath)

	root, cfg, err := a.prepare(opts)
	if err != nil {
		return err
	}

	if err := a.validate(ctx, root, cfg); err != nil {
		return err
	}

	if opts.SkipInstall {
		a.logger.Info("validation passed, skipping installs")
		return nil
	}

	report := a.installer.Run(ctx, root, cfg.Install, installer.Options{
		Jobs:    opts.Jobs,
		Timeout: opts.InstallTimeout,
		Command: opts.InstallCommand,
	})
	if err := ctx.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "install interrupted"), "failed", report.FailureCount())
	}
	if report.Failed() {
		a.logger.Warn(fmt.Sprintf("%d of %d installs failed", report.FailureCount(), len(report)))
	}

	return nil
}

// Validate loads the configuration and checks every entry without installing.
func (a *App) Validate(ctx context.Context, opts RunOptions) error {
	defer a.closeTelemetry(opts.ReportPath)

	root, cfg, err := a.prepare(opts)
	if err != nil {
		return err
	}

	return a.validate(ctx, root, cfg)
}

func (a *App) prepare(opts RunOptions) (string, *domain.Config, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	cfg, err := a.configLoader.Load(root, opts.ConfigFile)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to load configuration")
	}

	a.writeSnapshot(opts.SnapshotPath, cfg)
	return root, cfg, nil
}

// writeSnapshot is best-effort; a failure is logged and the run continues.
func (a *App) writeSnapshot(path string, cfg *domain.Config) {
	if path == "" {
		return
	}

	digest, err := a.snapshot.Write(path, cfg)
	if err != nil {
		a.logger.Warn("could not write config snapshot: " + err.Error())
		return
	}
	a.logger.Info(fmt.Sprintf("wrote config snapshot %s (xxh64 %s)", path, digest))
}

// validate checks every entry in order and reports each failure.
func (a *App) validate(ctx context.Context, root string, cfg *domain.Config) error {
	report := make(domain.ValidationReport, 0, len(cfg.Validate))

	for _, entry := range cfg.Validate {
		abs := domain.ResolvePath(root, entry.Path)
		a.reporter.ValidationStarted(entry.Label, DisplayPath(root, abs))

		vertex := a.telemetry.Record(ctx, "validate "+entry.Label)
		outcome := a.validator.Validate(ctx, root, entry)
		vertex.Complete(outcome.Err)

		if !outcome.OK() {
			a.reporter.ValidationFailed(outcome)
		}
		report = append(report, outcome)
	}

	if report.Failed() {
		failures := report.Failures()
		return zerr.With(
			zerr.Wrap(domain.ErrValidationFailed, fmt.Sprintf("%d of %d entries failed", len(failures), len(report))),
			"labels", labels(failures),
		)
	}
	return nil
}

// closeTelemetry writes the progress report, best-effort, then closes the session.
func (a *App) closeTelemetry(reportPath string) {
	if reportPath != "" {
		if err := a.telemetry.WriteReport(reportPath); err != nil {
			a.logger.Warn("could not write progress report: " + err.Error())
		} else {
			a.logger.Info("wrote progress report " + reportPath)
		}
	}
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn("could not close telemetry: " + err.Error())
	}
}

// DisplayPath strips root from abs, leaving paths outside root untouched.
func DisplayPath(root, abs string) string {
	if root == string(filepath.Separator) {
		return abs
	}
	if rest, ok := strings.CutPrefix(abs, root); ok && (rest == "" || rest[0] == filepath.Separator) {
		return rest
	}
	return abs
}

func labels(outcomes []domain.ValidationOutcome) []string {
	out := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, o.Entry.Label)
	}
	return out
}
