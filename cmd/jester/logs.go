package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/jester/internal/config"
	"github.com/five82/jester/internal/logtail"
)

func newLogsCmd(flags *rootFlags) *cobra.Command {
	var (
		lines int
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent entries from the session log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			entries, err := logtail.Tail(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no log entries in %s\n", cfg.LogFile)
				return nil
			}
			return logtail.Render(cmd.OutOrStdout(), entries, raw)
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "Number of lines to show (0 for all)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print JSON events as written")
	return cmd
}
