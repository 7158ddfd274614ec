package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gha-validator/internal/core/domain"
)

func TestResolvePath(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "work", "site")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "relative", path: "dist/index.html", want: filepath.Join(root, "dist", "index.html")},
		{name: "dot segments", path: "./dist/../out/index.html", want: filepath.Join(root, "out", "index.html")},
		{name: "absolute", path: filepath.Join(string(filepath.Separator), "tmp", "a.html"), want: filepath.Join(string(filepath.Separator), "tmp", "a.html")},
		{name: "empty", path: "", want: root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ResolvePath(root, tt.path))
		})
	}
}

func TestValidationReport(t *testing.T) {
	t.Run("empty report passes", func(t *testing.T) {
		var report domain.ValidationReport
		assert.False(t, report.Failed())
		assert.Empty(t, report.Failures())
	})

	t.Run("failures keep order", func(t *testing.T) {
		report := domain.ValidationReport{
			{Entry: domain.ValidationEntry{Label: "a"}, Status: domain.StatusValid},
			{Entry: domain.ValidationEntry{Label: "b"}, Status: domain.StatusEmpty, Err: domain.ErrFileEmpty},
			{Entry: domain.ValidationEntry{Label: "c"}, Status: domain.StatusValid},
			{Entry: domain.ValidationEntry{Label: "d"}, Status: domain.StatusMissing, Err: domain.ErrFileMissing},
		}

		assert.True(t, report.Failed())
		failures := report.Failures()
		if assert.Len(t, failures, 2) {
			assert.Equal(t, "b", failures[0].Entry.Label)
			assert.Equal(t, "d", failures[1].Entry.Label)
		}
	})
}

func TestValidationStatus_String(t *testing.T) {
	assert.Equal(t, "valid", domain.StatusValid.String())
	assert.Equal(t, "missing", domain.StatusMissing.String())
	assert.Equal(t, "empty", domain.StatusEmpty.String())
	assert.Equal(t, "parse_error", domain.StatusParseError.String())
	assert.Equal(t, "unknown", domain.ValidationStatus(42).String())
}

func TestInstallReport(t *testing.T) {
	report := domain.InstallReport{
		{Dir: "a", Status: domain.InstallFailed, Err: errors.New("boom")},
		{Dir: "b", Status: domain.InstallSucceeded},
	}

	assert.True(t, report.Failed())
	assert.Equal(t, 1, report.FailureCount())
	assert.Equal(t, "failed", report[0].Status.String())
	assert.Equal(t, "succeeded", report[1].Status.String())
	assert.False(t, domain.InstallReport{}.Failed())
}

func TestCommand_String(t *testing.T) {
	cmd := domain.Command{Name: "npm", Args: []string{"install", "--omit=dev"}, Dir: "/w"}
	assert.Equal(t, "npm install --omit=dev", cmd.String())
	assert.Equal(t, "true", domain.Command{Name: "true"}.String())
}
