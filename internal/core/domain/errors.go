package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigInvalid is returned when the configuration file cannot be parsed
	// or does not match the expected shape.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrDuplicateLabel is returned when a validation label appears twice.
	ErrDuplicateLabel = zerr.New("duplicate validation label")

	// ErrFileMissing is recorded when a validated file does not exist.
	ErrFileMissing = zerr.New("file does not exist")

	// ErrFileEmpty is recorded when a validated file has zero bytes.
	ErrFileEmpty = zerr.New("file is empty")

	// ErrBodyEmpty is recorded when a document has no body content.
	ErrBodyEmpty = zerr.New("<body> is empty")

	// ErrValidationFailed is returned when at least one validation entry failed.
	ErrValidationFailed = zerr.New("validation failed")

	// ErrInstallTimeout is recorded when an install exceeds its time limit.
	ErrInstallTimeout = zerr.New("install timed out")
)
