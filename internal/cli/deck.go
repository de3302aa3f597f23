package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkoenig/dobble/pkg/emoji"
	deckio "github.com/mkoenig/dobble/pkg/io"
	"github.com/mkoenig/dobble/pkg/pipeline"
	"github.com/mkoenig/dobble/pkg/render"
)

// deckCommand creates the deck command, the main entry point: it runs the
// full design → layout → render pipeline and writes a deck directory.
func (c *CLI) deckCommand() *cobra.Command {
	var (
		configPath  string
		name        string
		output      string
		assets      string
		noCache     bool
		interactive bool
	)
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Generate and render a complete deck",
		Long: `Generate and render a complete deck.

The deck command builds the combinatorial design for the requested card
size, assigns emoji to the design's symbols, lays each card out on a circle
packing, and renders every card as a PNG. The output directory contains the
card images plus an info/ directory with deck.csv, emojis.csv and deck.json.

When k-1 is a prime power the deck is the full projective plane with
(k-1)^2+(k-1)+1 cards; other card sizes fall back to a smaller design and
print a warning.

Results are cached locally, so re-running with the same parameters is fast.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				applyConfig(cmd, cfg, &opts, &name, &output, &assets)
			}
			if assets == "" {
				return fmt.Errorf("--assets is required (directory with <mode>/<group>/<hex>.png emoji images)")
			}
			if interactive {
				typ, err := pickPacking()
				if err != nil {
					return err
				}
				if typ == "" {
					return nil // user aborted
				}
				opts.Packing = typ
			}
			return c.runDeck(cmd, opts, name, output, assets, noCache)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML deck configuration file")
	cmd.Flags().StringVar(&name, "name", "deck", "deck name (output directory and file prefix)")
	cmd.Flags().StringVarP(&output, "output", "o", ".", "parent directory for the deck directory")
	cmd.Flags().StringVar(&assets, "assets", "", "emoji asset directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the packing type interactively")

	addDesignFlags(cmd, &opts)
	addLayoutFlags(cmd, &opts)
	addRenderFlags(cmd, &opts)

	return cmd
}

// runDeck executes the pipeline and writes the deck directory.
func (c *CLI) runDeck(cmd *cobra.Command, opts pipeline.Options, name, output, assets string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.Provider = emoji.NewDirProvider(assets)

	spinner := newSpinnerWithContext(cmd.Context(), "Generating deck...")
	opts.OnCard = func(done, total int) {
		spinner.SetMessage(fmt.Sprintf("Rendering cards %d/%d...", done, total))
	}
	spinner.Start()

	res, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		spinner.StopWithError("Deck generation failed")
		return err
	}
	spinner.SetMessage("Writing deck files...")

	written, err := render.WriteDeck(output, name, res.Artifacts, res.Cards)
	if err != nil {
		spinner.StopWithError("Writing deck failed")
		return err
	}
	deckJSON := filepath.Join(written.Dir, "info", "deck.json")
	if err := deckio.ExportJSON(deckJSON, res.Deck, res.Symbols); err != nil {
		spinner.StopWithError("Writing deck failed")
		return err
	}

	spinner.StopWithSuccess(fmt.Sprintf("Generated deck %q", name))
	printStats(res.Stats.CardCount, res.Stats.SymbolCount,
		res.CacheInfo.RenderHits == res.Stats.CardCount)
	if !res.Deck.Complete {
		printWarning("no projective plane of order %d exists; generated a reduced deck of %d cards",
			opts.SymbolsPerCard-1, res.Stats.CardCount)
	}
	printFile(written.Dir)
	printNextStep("Inspect the design", fmt.Sprintf("%s graph -k %d -o incidence.svg", appName, opts.SymbolsPerCard))
	return nil
}

// applyConfig layers config values under explicitly set flags.
func applyConfig(cmd *cobra.Command, cfg *Config, opts *pipeline.Options, name, output, assets *string) {
	// Snapshot flag-set values, apply config, then restore what the user
	// set explicitly so flags always win.
	flagOpts := *opts
	cfg.apply(opts)

	flags := cmd.Flags()
	if flags.Changed("symbols-per-card") {
		opts.SymbolsPerCard = flagOpts.SymbolsPerCard
	}
	if flags.Changed("mode") {
		opts.Mode = flagOpts.Mode
	}
	if flags.Changed("packing") {
		opts.Packing = flagOpts.Packing
	}
	if flags.Changed("min-scale") {
		opts.MinScale = flagOpts.MinScale
	}
	if flags.Changed("max-scale") {
		opts.MaxScale = flagOpts.MaxScale
	}
	if flags.Changed("jitter") {
		opts.Jitter = flagOpts.Jitter
	}
	if flags.Changed("rotation") {
		opts.RotationRange = flagOpts.RotationRange
	}
	if flags.Changed("no-shuffle") {
		opts.NoShuffle = flagOpts.NoShuffle
	}
	if flags.Changed("seed") {
		opts.Seed = flagOpts.Seed
	}
	if flags.Changed("size") {
		opts.CardSize = flagOpts.CardSize
	}
	if flags.Changed("padding") {
		opts.Padding = flagOpts.Padding
	}
	if flags.Changed("workers") {
		opts.Workers = flagOpts.Workers
	}

	if !flags.Changed("name") && cfg.Name != "" {
		*name = cfg.Name
	}
	if !flags.Changed("output") && cfg.Output != "" {
		*output = cfg.Output
	}
	if !flags.Changed("assets") && cfg.Assets.Dir != "" {
		*assets = cfg.Assets.Dir
	}
}

// addDesignFlags registers design-stage flags.
func addDesignFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().IntVarP(&opts.SymbolsPerCard, "symbols-per-card", "k", 0, "symbols per card (default 8)")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "emoji mode: color (default), black")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached results")
}

// addLayoutFlags registers layout-stage flags.
func addLayoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVar(&opts.Packing, "packing", "", "packing type: cci (default), ccib, ccic, ccir, ccis")
	cmd.Flags().Float64Var(&opts.MinScale, "min-scale", 0, "minimum symbol scale within its circle (default 0.8)")
	cmd.Flags().Float64Var(&opts.MaxScale, "max-scale", 0, "maximum symbol scale within its circle (default 1.0)")
	cmd.Flags().Float64Var(&opts.Jitter, "jitter", 0, "fraction of free slack used for position jitter (default 0.5)")
	cmd.Flags().Float64Var(&opts.RotationRange, "rotation", 0, "maximum symbol rotation in degrees (default 360)")
	cmd.Flags().BoolVar(&opts.NoShuffle, "no-shuffle", false, "assign symbols to circles in identifier order")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (default 42)")
}

// addRenderFlags registers render-stage flags.
func addRenderFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().IntVar(&opts.CardSize, "size", 0, "card image size in pixels (default 1024)")
	cmd.Flags().Float64Var(&opts.Padding, "padding", 0, "relative margin between a symbol and its circle (default 0.1)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent render workers (default NumCPU)")
}

// pickPacking shows the interactive packing picker. It returns the empty
// string when the user aborts.
func pickPacking() (string, error) {
	model, err := tea.NewProgram(newPackingListModel()).Run()
	if err != nil {
		return "", fmt.Errorf("packing picker: %w", err)
	}
	m, ok := model.(PackingListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return string(*m.Selected), nil
}
