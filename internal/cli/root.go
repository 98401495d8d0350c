package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the closepack command tree and returns the error of the
// selected subcommand, if any.
func Execute() error {
	var verbose bool
	root := &cobra.Command{
		Use:   "closepack",
		Short: "Assemble close-packed stacking polytypes into structure files",
		Long: `closepack builds layered crystal structures by stacking close-packed
sheets according to tabulated polytype sequences, and writes the resulting
supercells as CIF or TOPAS str files for diffraction work.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newListCmd())
	return root.ExecuteContext(context.Background())
}
