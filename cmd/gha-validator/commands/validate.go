package commands

import "github.com/spf13/cobra"

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configured files without installing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Validate(cmd.Context(), baseOptions(cmd))
		},
	}
}
