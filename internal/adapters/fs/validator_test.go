package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gha-validator/internal/adapters/fs"
	"go.trai.ch/gha-validator/internal/core/domain"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name       string
		content    *string
		wantStatus domain.ValidationStatus
		wantErr    error
	}{
		{
			name:       "valid page",
			content:    ptr("<html><body><h1>Hi</h1></body></html>"),
			wantStatus: domain.StatusValid,
		},
		{
			name:       "fragment without html wrapper",
			content:    ptr("<body><h1>Hi</h1></body>"),
			wantStatus: domain.StatusValid,
		},
		{
			name:       "missing file",
			content:    nil,
			wantStatus: domain.StatusMissing,
			wantErr:    domain.ErrFileMissing,
		},
		{
			name:       "zero byte file is empty, not a parse error",
			content:    ptr(""),
			wantStatus: domain.StatusEmpty,
			wantErr:    domain.ErrFileEmpty,
		},
		{
			name:       "whitespace only body",
			content:    ptr("<html><head><title>x</title></head><body>\n   \t\n</body></html>"),
			wantStatus: domain.StatusParseError,
			wantErr:    domain.ErrBodyEmpty,
		},
		{
			name:       "body with tags but no text",
			content:    ptr("<html><body><div>  </div><span></span></body></html>"),
			wantStatus: domain.StatusParseError,
			wantErr:    domain.ErrBodyEmpty,
		},
		{
			name:       "head only",
			content:    ptr("<html><head><title>Only a title</title></head></html>"),
			wantStatus: domain.StatusParseError,
			wantErr:    domain.ErrBodyEmpty,
		},
		{
			name:       "plain text counts as body content",
			content:    ptr("hello"),
			wantStatus: domain.StatusValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.content != nil {
				writeFile(t, root, "dist/index.html", *tt.content)
			}

			v := fs.NewValidator()
			entry := domain.ValidationEntry{Label: "home", Path: "dist/index.html"}
			outcome := v.Validate(context.Background(), root, entry)

			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Equal(t, entry, outcome.Entry)
			assert.Equal(t, filepath.Join(root, "dist", "index.html"), outcome.AbsPath)
			if tt.wantErr == nil {
				assert.NoError(t, outcome.Err)
				assert.True(t, outcome.OK())
				return
			}
			require.Error(t, outcome.Err)
			assert.True(t, errors.Is(outcome.Err, tt.wantErr), "expected %v, got %v", tt.wantErr, outcome.Err)
		})
	}
}

func TestValidator_Validate_BodyEmptyMessage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "<body></body>")

	outcome := fs.NewValidator().Validate(context.Background(), root, domain.ValidationEntry{Label: "home", Path: "index.html"})
	require.Error(t, outcome.Err)
	assert.Equal(t, "home: <body> is empty", outcome.Err.Error())
}

func TestValidator_Validate_AbsolutePath(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeFile(t, other, "page.html", "<p>content</p>")

	abs := filepath.Join(other, "page.html")
	outcome := fs.NewValidator().Validate(context.Background(), root, domain.ValidationEntry{Label: "page", Path: abs})
	assert.Equal(t, domain.StatusValid, outcome.Status)
	assert.Equal(t, abs, outcome.AbsPath)
}

func TestValidator_Validate_Directory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "dist/index.html", "<p>x</p>")

	outcome := fs.NewValidator().Validate(context.Background(), root, domain.ValidationEntry{Label: "dist", Path: "dist"})
	assert.False(t, outcome.OK())
}

func ptr(s string) *string {
	return &s
}
