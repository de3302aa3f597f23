package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mkoenig/dobble/pkg/cache"
	"github.com/mkoenig/dobble/pkg/design"
	"github.com/mkoenig/dobble/pkg/emoji"
	"github.com/mkoenig/dobble/pkg/layout"
	"github.com/mkoenig/dobble/pkg/observability"
	"github.com/mkoenig/dobble/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete design → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)
	if opts.Provider == nil {
		return nil, fmt.Errorf("invalid options: provider is required")
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: Design
	designStart := time.Now()
	observability.Pipeline().OnDesignStart(ctx, opts.SymbolsPerCard)
	deck, designHit, err := r.DesignWithCacheInfo(ctx, opts)
	result.Stats.DesignTime = time.Since(designStart)
	observability.Pipeline().OnDesignComplete(ctx, opts.SymbolsPerCard, cardCount(deck), result.Stats.DesignTime, err)
	if err != nil {
		return nil, fmt.Errorf("design: %w", err)
	}
	result.Deck = deck
	result.Stats.CardCount = len(deck.Cards)
	result.Stats.SymbolCount = deck.Symbols
	result.CacheInfo.DesignHit = designHit

	// Content hash of the design feeds the layout cache keys.
	if data, err := json.Marshal(deck); err == nil {
		result.DesignHash = cache.Hash(data)
	}

	r.Logger.Info("generated design",
		"cards", len(deck.Cards),
		"symbols", deck.Symbols,
		"complete", deck.Complete,
		"duration", result.Stats.DesignTime)

	// Assign emoji to design symbols.
	result.Symbols, result.Cards, err = assignSymbols(deck, opts.SymbolPool())
	if err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Packing, len(deck.Cards))
	layouts := make([]*layout.CardLayout, len(result.Cards))
	for i, card := range result.Cards {
		ids := make([]string, len(card))
		for j, s := range card {
			ids[j] = s.ID()
		}
		l, hit, err := r.LayoutWithCacheInfo(ctx, result.DesignHash, ids, opts.Seed+uint64(i), opts)
		if err != nil {
			observability.Pipeline().OnLayoutComplete(ctx, opts.Packing, time.Since(layoutStart), err)
			return nil, fmt.Errorf("layout card %d: %w", i+1, err)
		}
		layouts[i] = l
		if hit {
			result.CacheInfo.LayoutHits++
		}
	}
	result.Layouts = layouts
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Packing, result.Stats.LayoutTime, nil)

	r.Logger.Info("computed layouts",
		"cards", len(layouts),
		"packing", opts.Packing,
		"cache_hits", result.CacheInfo.LayoutHits,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, len(layouts))
	artifacts, renderHits, err := r.renderAll(ctx, layouts, result.Cards, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, len(layouts), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHits = renderHits

	r.Logger.Info("rendered cards",
		"cards", len(artifacts),
		"size", opts.CardSize,
		"cache_hits", renderHits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// DesignWithCacheInfo generates the design with caching and returns cache
// hit info.
func (r *Runner) DesignWithCacheInfo(ctx context.Context, opts Options) (*design.Deck, bool, error) {
	if err := opts.ValidateForDesign(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.DesignKey(opts.SymbolsPerCard)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var deck design.Deck
			if err := json.Unmarshal(data, &deck); err == nil && deck.Verify() == nil {
				observability.Cache().OnCacheHit(ctx, "design")
				return &deck, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "design")
	}

	deck, err := design.Generate(opts.SymbolsPerCard)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(deck); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDesign)
		observability.Cache().OnCacheSet(ctx, "design", len(data))
	}

	return deck, false, nil
}

// Design is a convenience wrapper that discards the cache hit info.
func (r *Runner) Design(ctx context.Context, opts Options) (*design.Deck, error) {
	deck, _, err := r.DesignWithCacheInfo(ctx, opts)
	return deck, err
}

// LayoutWithCacheInfo computes one card's layout with caching and returns
// cache hit info. The seed is per card; Execute derives it from the base
// seed and the card index.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, designHash string, symbols []string, seed uint64, opts Options) (*layout.CardLayout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(designHash, symbols, opts.LayoutKeyOpts(seed))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.CardLayout
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return &cached, true, nil
			}
			// Deserialization failure falls through to recompute.
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	l, err := layout.Card(symbols, opts.LayoutConfig(seed))
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(l); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return l, false, nil
}

// Layout is a convenience wrapper that discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, designHash string, symbols []string, seed uint64, opts Options) (*layout.CardLayout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, designHash, symbols, seed, opts)
	return l, err
}

// RenderCardWithCacheInfo renders one card with caching and returns cache
// hit info.
func (r *Runner) RenderCardWithCacheInfo(ctx context.Context, l *layout.CardLayout, syms map[string]emoji.Symbol, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	if opts.Provider == nil {
		return nil, false, fmt.Errorf("provider is required")
	}

	layoutData, err := json.Marshal(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	cacheKey := r.Keyer.ArtifactKey(cache.Hash(layoutData), opts.ArtifactKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	img, err := render.Card(l, syms, opts.Provider, render.CardOptions{Size: opts.CardSize, Padding: opts.Padding})
	if err != nil {
		return nil, false, err
	}
	data, err := render.EncodePNG(img)
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))

	return data, false, nil
}

// RenderCard is a convenience wrapper that discards the cache hit info.
func (r *Runner) RenderCard(ctx context.Context, l *layout.CardLayout, syms map[string]emoji.Symbol, opts Options) ([]byte, error) {
	data, _, err := r.RenderCardWithCacheInfo(ctx, l, syms, opts)
	return data, err
}

// renderAll renders every card concurrently, bounded by opts.Workers.
func (r *Runner) renderAll(ctx context.Context, layouts []*layout.CardLayout, cards [][]emoji.Symbol, opts Options) ([][]byte, int, error) {
	index := make(map[string]emoji.Symbol)
	for _, card := range cards {
		for _, s := range card {
			index[s.ID()] = s
		}
	}

	artifacts := make([][]byte, len(layouts))
	var hits, done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, l := range layouts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, hit, err := r.RenderCardWithCacheInfo(gctx, l, index, opts)
			if err != nil {
				return fmt.Errorf("card %d: %w", i+1, err)
			}
			artifacts[i] = data
			if hit {
				hits.Add(1)
			}
			if opts.OnCard != nil {
				opts.OnCard(int(done.Add(1)), len(layouts))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return artifacts, int(hits.Load()), nil
}

// assignSymbols maps design symbol indices to emoji from the pool. The pool
// must cover the design's symbol count.
func assignSymbols(deck *design.Deck, pool []emoji.Symbol) ([]emoji.Symbol, [][]emoji.Symbol, error) {
	if len(pool) < deck.Symbols {
		return nil, nil, fmt.Errorf("design needs %d symbols, pool has %d", deck.Symbols, len(pool))
	}
	symbols := pool[:deck.Symbols]

	cards := make([][]emoji.Symbol, len(deck.Cards))
	for i, card := range deck.Cards {
		cards[i] = make([]emoji.Symbol, len(card))
		for j, s := range card {
			cards[i][j] = symbols[s]
		}
	}
	return symbols, cards, nil
}

func cardCount(d *design.Deck) int {
	if d == nil {
		return 0
	}
	return len(d.Cards)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
