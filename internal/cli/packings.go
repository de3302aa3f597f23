package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoenig/dobble/pkg/packing"
)

// packingsCommand creates the packings command listing the embedded circle
// packing tables.
func (c *CLI) packingsCommand() *cobra.Command {
	var showCounts bool

	cmd := &cobra.Command{
		Use:   "packings",
		Short: "List the available circle packing tables",
		Long: `List the available circle packing tables.

Each packing family places n circles inside the unit card disk. cci packs
equal circles; the other families grow or shrink circles along a power-law
profile, which makes some symbols larger than others on the rendered card.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, typ := range packing.Types() {
				counts := packing.Counts(typ)
				span := "no tables"
				if len(counts) > 0 {
					span = fmt.Sprintf("%d–%d symbols", counts[0], counts[len(counts)-1])
				}
				printKeyValue(string(typ), fmt.Sprintf("%-38s %s", packingDescriptions[typ], StyleDim.Render(span)))

				if showCounts {
					printDetail("counts: %s", formatCounts(counts))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCounts, "counts", false, "list every supported symbol count")

	return cmd
}

func formatCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, " ")
}
