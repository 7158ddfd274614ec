// Package config provides the configuration loader for gha-validator.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/gha-validator/internal/core/domain"
	"go.trai.ch/gha-validator/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file named filename from cwd.
// An empty filename falls back to domain.ConfigFilename.
func (l *Loader) Load(cwd, filename string) (*domain.Config, error) {
	if filename == "" {
		filename = domain.ConfigFilename
	}
	path := domain.ResolvePath(cwd, filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "missing config file "+path), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if l.logger != nil && len(cfg.Validate) == 0 && len(cfg.Install) == 0 {
		l.logger.Warn(filepath.Base(path) + " has no validate or install entries")
	}
	return cfg, nil
}

// Parse decodes configuration bytes into a domain.Config.
// Missing sections default to empty; an empty document yields an empty config.
func Parse(data []byte) (*domain.Config, error) {
	var file Configfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrConfigInvalid, err)
	}

	seen := make(map[string]struct{}, len(file.Validate))
	for _, entry := range file.Validate {
		if _, dup := seen[entry.Label]; dup {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateLabel, "failed to parse config file"), "label", entry.Label)
		}
		seen[entry.Label] = struct{}{}
	}

	return &domain.Config{
		Validate: []domain.ValidationEntry(file.Validate),
		Install:  file.Install,
	}, nil
}
