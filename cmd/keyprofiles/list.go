package main

import (
	"fmt"

	"github.com/jonathan/keyprofiles/internal/observability"
	"github.com/jonathan/keyprofiles/internal/profiles"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var mode string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the known profile names",
		Long:  "Lists the profile names in the major and minor catalogues, one per line as mode<TAB>name, or boxed with --verbose.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := profiles.DefaultCatalogue()

			modes := profiles.Modes
			if mode != "" {
				m, err := profiles.ParseMode(mode)
				if err != nil {
					return err
				}
				modes = []profiles.Mode{m}
			}

			if verbose {
				observability.NewPrinter(cmd.OutOrStdout()).PrintCatalogue(cat, modes...)
				return nil
			}
			for _, m := range modes {
				for _, name := range cat.Names(m) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m, name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Only list this mode (major or minor)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a formatted summary")
	return cmd
}
