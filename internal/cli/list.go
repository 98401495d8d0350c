package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"closepack"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the bundled polytype table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range closepack.Polytypes() {
				blocks, err := closepack.PolytypeBlocks(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-4s %d block(s) of %d sheets\n", name, blocks, closepack.SheetPeriod)
			}
			return nil
		},
	}
}
