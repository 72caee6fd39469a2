package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/jester/internal/jokeapi"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List joke categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, c := range jokeapi.Categories() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n", i+1, c)
			}
			return nil
		},
	}
}
