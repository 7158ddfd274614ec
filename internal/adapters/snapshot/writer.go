// Package snapshot writes a JSON copy of the loaded configuration for debugging.
package snapshot

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gha-validator/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filename is the snapshot file name inside the tool's tmp directory.
const Filename = "schema.json"

// DefaultPath returns <dir of executable>/tmp/schema.json.
// It returns an empty string when the executable cannot be located.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "tmp", Filename)
}

// Writer implements ports.SnapshotWriter.
type Writer struct{}

// NewWriter creates a new snapshot Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes cfg as 2-space indented JSON to path, replacing any previous file.
// It returns the xxhash64 digest of the written bytes in hex.
func (w *Writer) Write(path string, cfg *domain.Config) (string, error) {
	data, err := Marshal(cfg)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create snapshot directory"), "path", path)
	}

	//nolint:gosec // snapshot is a debug artifact, not a secret
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write snapshot"), "path", path)
	}

	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}

// document is the JSON shape of a snapshot.
type document struct {
	Validate entries  `json:"validate"`
	Install  []string `json:"install"`
}

// entries marshals as a JSON object whose keys keep configuration order.
type entries []domain.ValidationEntry

func (e entries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Path)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Marshal renders cfg as the snapshot JSON document.
func Marshal(cfg *domain.Config) ([]byte, error) {
	doc := document{Validate: entries{}, Install: []string{}}
	if cfg != nil {
		if cfg.Validate != nil {
			doc.Validate = entries(cfg.Validate)
		}
		if cfg.Install != nil {
			doc.Install = cfg.Install
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode snapshot")
	}
	return append(data, '\n'), nil
}
