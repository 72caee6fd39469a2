package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/jester/internal/app"
)

type rootFlags struct {
	configPath string
	prefsPath  string
	category   string
	verbose    bool
}

// stdoutIsTerminal decides between the dashboard and plain output.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func (f *rootFlags) options() app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		Category:   f.category,
		Verbose:    f.verbose,
	}
}

// plainOptions is used outside the TUI, where stderr is free for logs.
func (f *rootFlags) plainOptions(stderr io.Writer) app.Options {
	opts := f.options()
	if f.verbose {
		opts.LogWriter = stderr
	}
	return opts
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "jester",
		Short:         "Jester is a jokes dashboard for working professionals",
		Long:          "Jester fetches safe-for-work jokes from JokeAPI. On a terminal it opens the dashboard; otherwise it prints one joke.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdoutIsTerminal() {
				return app.PrintJoke(cmd.Context(), flags.plainOptions(cmd.ErrOrStderr()), cmd.OutOrStdout())
			}
			return app.Run(cmd.Context(), flags.options())
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/jester/config.toml)")
	cmd.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "Preferences file (default ~/.config/jester/prefs.toml)")
	cmd.PersistentFlags().StringVarP(&flags.category, "category", "c", "", "Joke category, overrides default_category")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newOnceCmd(flags))
	cmd.AddCommand(newCategoriesCmd())
	cmd.AddCommand(newLogsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
