// Package fs provides filesystem-backed adapters.
package fs

import (
	"context"
	"errors"
	"os"
	"strings"

	"go.trai.ch/gha-validator/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validator checks that build artifacts exist, are non-empty and carry body content.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate resolves entry.Path against root and runs the checks in order:
// existence, non-zero size, non-blank body. The first failing check decides the outcome.
func (v *Validator) Validate(_ context.Context, root string, entry domain.ValidationEntry) domain.ValidationOutcome {
	path := domain.ResolvePath(root, entry.Path)
	outcome := domain.ValidationOutcome{Entry: entry, AbsPath: path}

	info, err := os.Stat(path)
	if err != nil {
		outcome.Status = domain.StatusMissing
		if os.IsNotExist(err) {
			outcome.Err = zerr.With(zerr.Wrap(domain.ErrFileMissing, entry.Label), "path", path)
		} else {
			outcome.Err = zerr.With(errors.Join(domain.ErrFileMissing, err), "path", path)
		}
		return outcome
	}

	if info.Size() == 0 {
		outcome.Status = domain.StatusEmpty
		outcome.Err = zerr.With(zerr.Wrap(domain.ErrFileEmpty, entry.Label), "path", path)
		return outcome
	}

	if err := checkBody(path); err != nil {
		outcome.Status = domain.StatusParseError
		outcome.Err = zerr.With(zerr.Wrap(err, entry.Label), "path", path)
		return outcome
	}

	outcome.Status = domain.StatusValid
	return outcome
}

func checkBody(path string) error {
	f, err := os.Open(path) //nolint:gosec // path comes from the validator config
	if err != nil {
		return zerr.Wrap(err, "failed to open file")
	}
	defer func() {
		_ = f.Close()
	}()

	text, err := BodyText(f)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return domain.ErrBodyEmpty
	}
	return nil
}
