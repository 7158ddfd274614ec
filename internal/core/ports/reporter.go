package ports

import (
	"io"

	"go.trai.ch/gha-validator/internal/core/domain"
)

// Reporter prints pipeline progress to the console.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// ValidationStarted announces an entry before it is checked.
	ValidationStarted(label, displayPath string)
	// ValidationFailed prints the reason an entry failed.
	ValidationFailed(outcome domain.ValidationOutcome)
	// InstallStarted announces an install directory before the command runs.
	InstallStarted(dir, absPath string)
	// InstallFailed prints the reason an install failed.
	InstallFailed(outcome domain.InstallOutcome)
	// SetOutput redirects progress lines to stdout and failures to stderr.
	SetOutput(stdout, stderr io.Writer)
}
