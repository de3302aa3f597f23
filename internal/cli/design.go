package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkoenig/dobble/pkg/design"
	deckio "github.com/mkoenig/dobble/pkg/io"
	"github.com/mkoenig/dobble/pkg/pipeline"
)

// designCommand creates the design command for building the combinatorial
// design without rendering. It needs no emoji assets.
func (c *CLI) designCommand() *cobra.Command {
	var (
		output    string
		printDeck bool
		noCache   bool
	)
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Build the deck design without rendering",
		Long: `Build the deck design without rendering.

The design command constructs the combinatorial design for the requested
card size, assigns catalog emoji to its symbols, and exports the result as
deck.json. The JSON can be inspected, edited, or fed to external tools.

With --print the cards are listed on stdout instead of written to a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDesign(cmd, opts, output, printDeck, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "deck.json", "output JSON file")
	cmd.Flags().BoolVar(&printDeck, "print", false, "print the cards instead of writing a file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	addDesignFlags(cmd, &opts)

	return cmd
}

func (c *CLI) runDesign(cmd *cobra.Command, opts pipeline.Options, output string, printDeck, noCache bool) error {
	if err := opts.ValidateForDesign(); err != nil {
		return err
	}
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	deck, cached, err := runner.DesignWithCacheInfo(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("design: %w", err)
	}

	pool := opts.SymbolPool()
	if len(pool) < deck.Symbols {
		return fmt.Errorf("design needs %d symbols, catalog has %d", deck.Symbols, len(pool))
	}
	symbols := pool[:deck.Symbols]

	if printDeck {
		printKeyValue("cards", fmt.Sprintf("%d", len(deck.Cards)))
		printKeyValue("symbols", fmt.Sprintf("%d", deck.Symbols))
		printKeyValue("complete", fmt.Sprintf("%t", deck.Complete))
		for i, card := range deck.Cards {
			names := make([]string, len(card))
			for j, s := range card {
				names[j] = symbols[s].Name
			}
			printDetail("card %3d: %v", i+1, names)
		}
	} else {
		if err := deckio.ExportJSON(output, deck, symbols); err != nil {
			return err
		}
		printSuccess("Exported design")
		printFile(output)
	}

	printStats(len(deck.Cards), deck.Symbols, cached)
	if !deck.Complete {
		printWarning("no projective plane of order %d exists; the deck has %d of the %d possible cards",
			opts.SymbolsPerCard-1, len(deck.Cards), design.MaxCards(opts.SymbolsPerCard))
	}
	return nil
}
