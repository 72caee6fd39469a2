package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/jester/internal/app"
)

func newOnceCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "once",
		Short: "Print a single joke and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.PrintJoke(cmd.Context(), flags.plainOptions(cmd.ErrOrStderr()), cmd.OutOrStdout())
		},
	}
}
