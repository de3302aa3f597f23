package cache

// ScopedKeyer wraps a Keyer with a prefix so independent decks or asset
// sets can share one cache directory without key collisions.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all generated
// keys. A nil inner keyer defaults to DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DesignKey generates a prefixed key for design caching.
func (k *ScopedKeyer) DesignKey(symbolsPerCard int) string {
	return k.prefix + k.inner.DesignKey(symbolsPerCard)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(designHash string, symbols []string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(designHash, symbols, opts)
}

// ArtifactKey generates a prefixed key for rendered card caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}

// Ensure ScopedKeyer implements Keyer.
var _ Keyer = (*ScopedKeyer)(nil)
