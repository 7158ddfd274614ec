// Package commands implements the CLI commands for gha-validator.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"go.trai.ch/gha-validator/internal/adapters/snapshot"
	"go.trai.ch/gha-validator/internal/adapters/telemetry/progrock"
	"go.trai.ch/gha-validator/internal/app"
	"go.trai.ch/gha-validator/internal/build"
	"go.trai.ch/gha-validator/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for gha-validator.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Validate(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gha-validator",
		Short:         "Validate build output, then install production dependencies",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", domain.ConfigFilename, "Configuration file name, relative to --dir")
	pf.StringP("dir", "C", ".", "Working directory that paths resolve against")
	pf.String("snapshot", snapshot.DefaultPath(), "Where to write the JSON config snapshot (empty disables it)")
	pf.String("progress-report", progrock.DefaultReportPath(), "Where to write the JSON progress report (empty disables it)")

	f := rootCmd.Flags()
	f.IntP("jobs", "j", 1, "Number of installs to run at once")
	f.Duration("install-timeout", 0, "Time limit for each install (0 means none)")
	f.String("install-cmd", "", "Install command to run instead of \"npm install --omit=dev\" (shell-style quoting)")
	f.Bool("skip-install", false, "Stop after validation")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = c.runPipeline
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runPipeline(cmd *cobra.Command, _ []string) error {
	opts := baseOptions(cmd)
	opts.Jobs, _ = cmd.Flags().GetInt("jobs")
	opts.InstallTimeout, _ = cmd.Flags().GetDuration("install-timeout")
	opts.SkipInstall, _ = cmd.Flags().GetBool("skip-install")

	installCmd, _ := cmd.Flags().GetString("install-cmd")
	command, err := shlex.Split(installCmd)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid --install-cmd"), "install_cmd", installCmd)
	}
	opts.InstallCommand = command

	return c.app.Run(cmd.Context(), opts)
}

// baseOptions reads the flags shared by every subcommand.
func baseOptions(cmd *cobra.Command) app.RunOptions {
	configFile, _ := cmd.Flags().GetString("config")
	dir, _ := cmd.Flags().GetString("dir")
	snapshotPath, _ := cmd.Flags().GetString("snapshot")
	reportPath, _ := cmd.Flags().GetString("progress-report")

	return app.RunOptions{
		Root:         dir,
		ConfigFile:   configFile,
		SnapshotPath: snapshotPath,
		ReportPath:   reportPath,
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
