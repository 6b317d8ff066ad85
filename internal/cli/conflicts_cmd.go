package cli

import (
	"fmt"

	"github.com/alexanderramin/skinadvisor/internal/cli/formatter"
	"github.com/alexanderramin/skinadvisor/internal/service"
	"github.com/spf13/cobra"
)

func newConflictsCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "conflicts <product> [product...]",
		Short:   "Check a set of products for ingredient conflicts",
		Example: `  skinadvisor conflicts "Retinol Serum" "Vitamin C Serum"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conflicts := service.DetectConflicts(a.Catalog.Conflicts, args)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), conflicts)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConflicts(conflicts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the conflict list as JSON")
	return cmd
}
