package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoenig/dobble/pkg/graph"
	"github.com/mkoenig/dobble/pkg/pipeline"
)

// graphCommand creates the graph command for rendering the card–symbol
// incidence graph.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		detailed bool
		noCache  bool
	)
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the card–symbol incidence graph",
		Long: `Render the card–symbol incidence graph.

The incidence graph is bipartite: card nodes connect to the symbol nodes
they contain. In a complete deck every pair of card nodes is linked through
exactly one shared symbol node, which makes the projective-plane structure
visible.

The output format follows the file extension: .svg, .png or .dot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, opts, output, detailed, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "incidence.svg", "output file (.svg, .png or .dot)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label symbol nodes with emoji names")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	addDesignFlags(cmd, &opts)

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, opts pipeline.Options, output string, detailed, noCache bool) error {
	ext := strings.ToLower(filepath.Ext(output))
	switch ext {
	case ".svg", ".png", ".dot":
	default:
		return fmt.Errorf("unsupported output format %q (use .svg, .png or .dot)", ext)
	}

	if err := opts.ValidateForDesign(); err != nil {
		return err
	}
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	deck, err := runner.Design(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("design: %w", err)
	}

	pool := opts.SymbolPool()
	if detailed && len(pool) < deck.Symbols {
		return fmt.Errorf("detailed labels need %d symbols, catalog has %d", deck.Symbols, len(pool))
	}
	symbols := pool
	if len(pool) >= deck.Symbols {
		symbols = pool[:deck.Symbols]
	}

	dot := graph.ToDOT(deck, symbols, graph.Options{Detailed: detailed})

	prog := newProgress(c.Logger)
	var data []byte
	switch ext {
	case ".svg":
		data, err = graph.RenderSVG(dot)
	case ".png":
		data, err = graph.RenderPNG(dot)
	case ".dot":
		data = []byte(dot)
	}
	if err != nil {
		return fmt.Errorf("render graph: %w", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	prog.done(fmt.Sprintf("Rendered incidence graph (%d cards, %d edges)",
		len(deck.Cards), graph.EdgeCount(deck)))

	printSuccess("Rendered incidence graph")
	printKeyValue("cards", fmt.Sprintf("%d", len(deck.Cards)))
	printKeyValue("symbols", fmt.Sprintf("%d", deck.Symbols))
	printKeyValue("edges", fmt.Sprintf("%d", graph.EdgeCount(deck)))
	printFile(output)
	return nil
}
