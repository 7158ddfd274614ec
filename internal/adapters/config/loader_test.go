package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gha-validator/internal/adapters/config"
	"go.trai.ch/gha-validator/internal/core/domain"
	"go.trai.ch/gha-validator/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
validate:
  zeta: dist/zeta.html
  home: dist/index.html
  about: dist/about/index.html
install:
  - packages/app
  - packages/api
`)

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	cfg, err := loader.Load(tmpDir, "")
	require.NoError(t, err)

	// Order follows the file, not the keys.
	assert.Equal(t, []domain.ValidationEntry{
		{Label: "zeta", Path: "dist/zeta.html"},
		{Label: "home", Path: "dist/index.html"},
		{Label: "about", Path: "dist/about/index.html"},
	}, cfg.Validate)
	assert.Equal(t, []string{"packages/app", "packages/api"}, cfg.Install)
}

func TestLoad_CustomFilename(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "ci.yml"), []byte("install: [web]\n"), 0o600))

	cfg, err := config.NewLoader(nil).Load(tmpDir, "ci.yml")
	require.NoError(t, err)
	assert.Empty(t, cfg.Validate)
	assert.Equal(t, []string{"web"}, cfg.Install)
}

func TestLoad_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := config.NewLoader(nil).Load(tmpDir, "")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
	assert.Contains(t, err.Error(), filepath.Join(tmpDir, domain.ConfigFilename))
}

func TestLoad_EmptyConfigWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "")

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(domain.ConfigFilename + " has no validate or install entries").Times(1)

	cfg, err := config.NewLoader(mockLogger).Load(tmpDir, "")
	require.NoError(t, err)
	assert.Empty(t, cfg.Validate)
	assert.Empty(t, cfg.Install)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     error
		wantEntries int
		wantInstall int
	}{
		{
			name:    "empty document",
			content: "",
		},
		{
			name:    "null sections",
			content: "validate:\ninstall:\n",
		},
		{
			name:        "validate only",
			content:     "validate:\n  home: index.html\n",
			wantEntries: 1,
		},
		{
			name:        "install only",
			content:     "install:\n  - a\n  - b\n  - c\n",
			wantInstall: 3,
		},
		{
			name:        "unknown keys ignored",
			content:     "name: site\nvalidate:\n  home: index.html\n",
			wantEntries: 1,
		},
		{
			name:    "malformed yaml",
			content: "validate: [unclosed\n",
			wantErr: domain.ErrConfigInvalid,
		},
		{
			name:    "validate is a list",
			content: "validate:\n  - index.html\n",
			wantErr: domain.ErrConfigInvalid,
		},
		{
			name:    "nested validate value",
			content: "validate:\n  home:\n    path: index.html\n",
			wantErr: domain.ErrConfigInvalid,
		},
		{
			name:    "install is a mapping",
			content: "install:\n  app: packages/app\n",
			wantErr: domain.ErrConfigInvalid,
		},
		{
			name:    "duplicate label",
			content: "validate:\n  home: a.html\n  home: b.html\n",
			wantErr: domain.ErrDuplicateLabel,
		},
		{
			name:        "aliased path",
			content:     "paths:\n  home: &home dist/index.html\nvalidate:\n  home: *home\n",
			wantEntries: 1,
		},
		{
			name:        "aliased validate section",
			content:     "pages: &pages\n  home: index.html\n  about: about.html\nvalidate: *pages\n",
			wantEntries: 2,
		},
		{
			name:        "merge key",
			content:     "base: &base\n  home: index.html\nvalidate:\n  <<: *base\n  about: about.html\n",
			wantEntries: 2,
		},
		{
			name:    "alias to a mapping as path",
			content: "nested: &nested\n  path: index.html\nvalidate:\n  home: *nested\n",
			wantErr: domain.ErrConfigInvalid,
		},
		{
			name:    "alias to a sequence as path",
			content: "list: &list\n  - index.html\nvalidate:\n  home: *list\n",
			wantErr: domain.ErrConfigInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.content))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, cfg.Validate, tt.wantEntries)
			assert.Len(t, cfg.Install, tt.wantInstall)
		})
	}
}

func TestParse_Aliases(t *testing.T) {
	cfg, err := config.Parse([]byte(`
paths:
  home: &home dist/index.html
shared: &shared
  docs: dist/docs/index.html
validate:
  home: *home
  <<: *shared
  about: dist/about.html
`))
	require.NoError(t, err)

	assert.Equal(t, []domain.ValidationEntry{
		{Label: "home", Path: "dist/index.html"},
		{Label: "docs", Path: "dist/docs/index.html"},
		{Label: "about", Path: "dist/about.html"},
	}, cfg.Validate)
}
