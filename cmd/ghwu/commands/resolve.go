package commands

import "github.com/spf13/cobra"

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <reference>...",
		Short:   "Print the latest version of each reference",
		Example: "  ghwu resolve actions/checkout@v3 docker://alpine:3.18",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Resolve(cmd.Context(), args, cmd.OutOrStdout())
		},
	}
}
