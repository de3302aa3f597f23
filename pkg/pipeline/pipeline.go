// Package pipeline provides the core deck generation pipeline.
//
// This package implements the complete design → layout → render pipeline
// behind both the CLI and library use. Centralizing it keeps caching and
// staging behavior identical across all entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Design: Construct the combinatorial design (which symbols share a card)
//  2. Layout: Place each card's symbols on non-overlapping circles
//  3. Render: Draw each card as a PNG image
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SymbolsPerCard: 8,
//	    Provider:       emoji.NewDirProvider("assets"),
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	firstCard := result.Artifacts[0]
package pipeline

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkoenig/dobble/pkg/cache"
	"github.com/mkoenig/dobble/pkg/design"
	"github.com/mkoenig/dobble/pkg/emoji"
	"github.com/mkoenig/dobble/pkg/layout"
	"github.com/mkoenig/dobble/pkg/packing"
	"github.com/mkoenig/dobble/pkg/render"
)

// Defaults shared by CLI and library entry points.
const (
	// DefaultSymbolsPerCard matches the classic deck (8 symbols, 57 cards).
	DefaultSymbolsPerCard = 8

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)
)

// ValidModes is the set of supported emoji rendering modes.
var ValidModes = map[string]bool{
	emoji.ModeColor: true,
	emoji.ModeBlack: true,
}

// Options contains all configuration for the deck pipeline.
// This struct supports JSON serialization; zero values select defaults.
type Options struct {
	// Design options
	SymbolsPerCard int `json:"symbols_per_card,omitempty"`

	// Mode overrides the rendering mode of every symbol (color or black).
	// Empty keeps each symbol's own mode.
	Mode string `json:"mode,omitempty"`

	// Layout options
	Packing       string  `json:"packing,omitempty"`
	MinScale      float64 `json:"min_scale,omitempty"`
	MaxScale      float64 `json:"max_scale,omitempty"`
	Jitter        float64 `json:"jitter,omitempty"`
	RotationRange float64 `json:"rotation_range,omitempty"`
	NoShuffle     bool    `json:"no_shuffle,omitempty"`
	Seed          uint64  `json:"seed,omitempty"`

	// Render options
	CardSize int     `json:"card_size,omitempty"`
	Padding  float64 `json:"padding,omitempty"`
	Workers  int     `json:"workers,omitempty"`
	Refresh  bool    `json:"refresh,omitempty"`

	// Runtime options (not serialized)

	// Symbols is the candidate symbol pool. Defaults to the classic
	// catalog. The pool is deduplicated and sorted by identifier before
	// assignment, so the same pool always yields the same deck.
	Symbols []emoji.Symbol `json:"-"`

	// Provider supplies symbol images; required for rendering.
	Provider emoji.Provider `json:"-"`

	// OnCard, if set, is called after each card finishes rendering.
	OnCard func(done, total int) `json:"-"`

	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline run.
	RunID string

	// Deck is the combinatorial design.
	Deck *design.Deck

	// DesignHash is the content hash of the design.
	DesignHash string

	// Symbols is the assignment of emoji to design symbols: Symbols[i]
	// is the emoji for design symbol i.
	Symbols []emoji.Symbol

	// Cards holds the emoji on each card, aligned with Deck.Cards.
	Cards [][]emoji.Symbol

	// Layouts holds the computed layout per card.
	Layouts []*layout.CardLayout

	// Artifacts holds the rendered PNG bytes per card.
	Artifacts [][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CardCount   int
	SymbolCount int
	DesignTime  time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits per pipeline stage. Layout and render work
// per card, so their hits are counts rather than booleans.
type CacheInfo struct {
	DesignHit  bool
	LayoutHits int
	RenderHits int
}

// ValidateMode checks that an emoji mode is valid.
func ValidateMode(mode string) error {
	if mode != "" && !ValidModes[mode] {
		return fmt.Errorf("invalid mode: %q (must be one of: color, black)", mode)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Calling it multiple times has the same effect as once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForDesign(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForDesign checks required fields for design generation.
func (o *Options) ValidateForDesign() error {
	if o.SymbolsPerCard == 0 {
		o.SymbolsPerCard = DefaultSymbolsPerCard
	}
	if o.SymbolsPerCard < 2 {
		return fmt.Errorf("symbols_per_card must be at least 2, got %d", o.SymbolsPerCard)
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	def := layout.DefaultConfig()
	if o.Packing == "" {
		o.Packing = string(def.Packing)
	}
	if o.MinScale == 0 {
		o.MinScale = def.MinScale
	}
	if o.MaxScale == 0 {
		o.MaxScale = def.MaxScale
	}
	if o.Jitter == 0 {
		o.Jitter = def.Jitter
	}
	if o.RotationRange == 0 {
		o.RotationRange = def.RotationRange
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return o.LayoutConfig(o.Seed).Validate()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if o.CardSize == 0 {
		o.CardSize = render.DefaultCardSize
	}
	if o.CardSize < 0 {
		return fmt.Errorf("card_size must be positive, got %d", o.CardSize)
	}
	if o.Padding == 0 {
		o.Padding = render.DefaultPadding
	}
	if o.Padding < 0 || o.Padding >= 1 {
		return fmt.Errorf("padding must be in [0, 1), got %v", o.Padding)
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers must be positive, got %d", o.Workers)
	}
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	o.setLogger()
	return nil
}

// LayoutConfig builds the layout configuration for one card, using the
// given per-card seed.
func (o *Options) LayoutConfig(seed uint64) layout.Config {
	return layout.Config{
		Packing:       packing.Type(o.Packing),
		MinScale:      o.MinScale,
		MaxScale:      o.MaxScale,
		Jitter:        o.Jitter,
		RotationRange: o.RotationRange,
		Shuffle:       !o.NoShuffle,
		Seed:          seed,
	}
}

// LayoutKeyOpts returns cache key options for layout computation. The seed
// is per card, so it is passed separately.
func (o *Options) LayoutKeyOpts(seed uint64) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Packing:       o.Packing,
		MinScale:      o.MinScale,
		MaxScale:      o.MaxScale,
		Jitter:        o.Jitter,
		RotationRange: o.RotationRange,
		Shuffle:       !o.NoShuffle,
		Seed:          seed,
	}
}

// ArtifactKeyOpts returns cache key options for card rendering.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Size:    o.CardSize,
		Padding: o.Padding,
		Mode:    o.Mode,
	}
}

// SymbolPool returns the deduplicated, sorted candidate symbols with the
// mode override applied.
func (o *Options) SymbolPool() []emoji.Symbol {
	pool := o.Symbols
	if len(pool) == 0 {
		pool = emoji.Classic()
	} else {
		pool = append([]emoji.Symbol(nil), pool...)
	}
	if o.Mode != "" {
		for i := range pool {
			pool[i].Mode = o.Mode
		}
	}
	return emoji.Sort(emoji.Dedupe(pool))
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
