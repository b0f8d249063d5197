package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-fortis/fortis/pkg/factory"
)

// NewNamesCommand creates the names command.
func NewNamesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "names",
		Short:        "List the examples and the component names they register",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range exampleNames() {
				f := factory.New(nil)
				examples[name](f, rootOpts.Config.Title)
				fmt.Fprintf(w, "%s\n", name)
				for _, tag := range f.Registry().Names() {
					fmt.Fprintf(w, "  %s\n", tag)
				}
			}
			return nil
		},
	}
}
