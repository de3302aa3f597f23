package cache

import "fmt"

// LayoutKeyOpts carries every layout input that affects the cached result.
type LayoutKeyOpts struct {
	Packing       string
	MinScale      float64
	MaxScale      float64
	Jitter        float64
	RotationRange float64
	Shuffle       bool
	Seed          uint64
}

// ArtifactKeyOpts carries every rendering input that affects the cached
// card image.
type ArtifactKeyOpts struct {
	Size    int
	Padding float64
	Mode    string
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DesignKey keys a combinatorial design by its order parameter.
	DesignKey(symbolsPerCard int) string

	// LayoutKey keys a card layout by the design hash, the card's
	// symbol identifiers and the layout options.
	LayoutKey(designHash string, symbols []string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered card by its layout hash and the
	// rendering options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DesignKey generates a key for design caching.
func (k *DefaultKeyer) DesignKey(symbolsPerCard int) string {
	return fmt.Sprintf("design:%d", symbolsPerCard)
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(designHash string, symbols []string, opts LayoutKeyOpts) string {
	return hashKey("layout", designHash, symbols, opts)
}

// ArtifactKey generates a key for rendered card caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
