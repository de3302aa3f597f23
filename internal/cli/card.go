package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoenig/dobble/pkg/emoji"
	"github.com/mkoenig/dobble/pkg/pipeline"
)

// cardCommand creates the card command for rendering a single card from
// explicit symbols.
func (c *CLI) cardCommand() *cobra.Command {
	var (
		output  string
		assets  string
		noCache bool
	)
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "card <symbol>...",
		Short: "Render a single card from explicit symbols",
		Long: `Render a single card from explicit symbols.

Symbols are given as emoji hexcodes or names from the built-in catalog
(see 'dobble design --print' for the full list). The symbols are packed
onto one card and rendered as a PNG.

Example:

  dobble card anchor cactus dragon -o card.png --assets openmoji`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if assets == "" {
				return fmt.Errorf("--assets is required (directory with <mode>/<group>/<hex>.png emoji images)")
			}
			return c.runCard(cmd, args, opts, output, assets, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "card.png", "output PNG file")
	cmd.Flags().StringVar(&assets, "assets", "", "emoji asset directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "emoji mode: color (default), black")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached results")
	addLayoutFlags(cmd, &opts)
	addRenderFlags(cmd, &opts)

	return cmd
}

func (c *CLI) runCard(cmd *cobra.Command, args []string, opts pipeline.Options, output, assets string, noCache bool) error {
	symbols, err := resolveSymbols(args, opts.Mode)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.Provider = emoji.NewDirProvider(assets)
	opts.SymbolsPerCard = len(symbols)

	ids := make([]string, len(symbols))
	index := make(map[string]emoji.Symbol, len(symbols))
	for i, s := range symbols {
		ids[i] = s.ID()
		index[s.ID()] = s
	}

	prog := newProgress(c.Logger)
	if opts.Seed == 0 {
		opts.Seed = pipeline.DefaultSeed
	}
	l, err := runner.Layout(cmd.Context(), "", ids, opts.Seed, opts)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	data, cached, err := runner.RenderCardWithCacheInfo(cmd.Context(), l, index, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	prog.done(fmt.Sprintf("Rendered card with %d symbols", len(symbols)))

	printSuccess("Rendered card")
	printStats(1, len(symbols), cached)
	printFile(output)
	return nil
}

// resolveSymbols looks up catalog symbols by hexcode or name.
func resolveSymbols(args []string, mode string) ([]emoji.Symbol, error) {
	byKey := make(map[string]emoji.Symbol)
	for _, s := range emoji.Classic() {
		byKey[strings.ToLower(s.Hex)] = s
		byKey[strings.ToLower(s.Name)] = s
	}

	symbols := make([]emoji.Symbol, len(args))
	for i, arg := range args {
		s, ok := byKey[strings.ToLower(arg)]
		if !ok {
			return nil, fmt.Errorf("unknown symbol %q (hexcode or catalog name expected)", arg)
		}
		if mode != "" {
			s.Mode = mode
		}
		symbols[i] = s
	}

	if deduped := emoji.Dedupe(symbols); len(deduped) != len(symbols) {
		return nil, fmt.Errorf("duplicate symbols on one card")
	}
	return symbols, nil
}
