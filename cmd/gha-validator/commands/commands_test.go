package commands_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gha-validator/cmd/gha-validator/commands"
	"go.trai.ch/gha-validator/internal/app"
	"go.trai.ch/gha-validator/internal/build"
	"go.trai.ch/gha-validator/internal/core/domain"
)

type mockApp struct {
	runFunc      func(ctx context.Context, opts app.RunOptions) error
	validateFunc func(ctx context.Context, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Validate(ctx context.Context, opts app.RunOptions) error {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Root(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, ".", captured.Root)
		assert.Equal(t, domain.ConfigFilename, captured.ConfigFile)
		assert.Equal(t, "progress.json", filepath.Base(captured.ReportPath))
		assert.Equal(t, 1, captured.Jobs)
		assert.Zero(t, captured.InstallTimeout)
		assert.Empty(t, captured.InstallCommand)
		assert.False(t, captured.SkipInstall)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"-C", "site",
			"-c", "ci.yml",
			"--snapshot", "",
			"--progress-report", "/tmp/progress.json",
			"-j", "4",
			"--install-timeout", "2m",
			"--install-cmd", "pnpm install --prod",
			"--skip-install",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.RunOptions{
			Root:           "site",
			ConfigFile:     "ci.yml",
			SnapshotPath:   "",
			ReportPath:     "/tmp/progress.json",
			SkipInstall:    true,
			Jobs:           4,
			InstallTimeout: 2 * time.Minute,
			InstallCommand: []string{"pnpm", "install", "--prod"},
		}, captured)
	})

	t.Run("install command keeps quoted arguments", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--install-cmd", `sh -c 'echo hi > "out file.txt"'`})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"sh", "-c", `echo hi > "out file.txt"`}, captured.InstallCommand)
	})

	t.Run("rejects unterminated quote in install command", func(t *testing.T) {
		called := false
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--install-cmd", "sh -c 'echo hi"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --install-cmd")
		assert.False(t, called)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{})

		err := cli.Execute(context.Background())
		assert.EqualError(t, err, "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"extra"})

		assert.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Validate(t *testing.T) {
	var captured app.RunOptions
	runCalled := false
	mock := &mockApp{
		runFunc: func(_ context.Context, _ app.RunOptions) error {
			runCalled = true
			return nil
		},
		validateFunc: func(_ context.Context, opts app.RunOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"validate", "-C", "site", "--snapshot", "/tmp/schema.json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.False(t, runCalled)
	assert.Equal(t, "site", captured.Root)
	assert.Equal(t, "/tmp/schema.json", captured.SnapshotPath)
	assert.Equal(t, domain.ConfigFilename, captured.ConfigFile)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"gha-validator version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		out.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "gha-validator version "+build.Version)
}
