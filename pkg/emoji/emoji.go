// Package emoji defines the symbol catalog for deck generation and the
// asset provider boundary that supplies renderable symbol images.
//
// Symbols are OpenMoji references: a rendering mode (color or black), a
// group directory, and a hexcode that doubles as the symbol identifier.
// The core algorithms only ever see identifiers; image bytes stay behind
// the Provider interface.
package emoji

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"
)

// Rendering modes of the OpenMoji asset set.
const (
	ModeColor = "color"
	ModeBlack = "black"
)

// Symbol references one emoji in the OpenMoji dataset.
type Symbol struct {
	// Name is the human-readable emoji name, for listings and CSV labels.
	Name string

	// Mode is the asset variant, ModeColor or ModeBlack.
	Mode string

	// Group is the OpenMoji group directory (e.g. "animals-nature").
	Group string

	// Hex is the emoji hexcode and serves as the symbol identifier.
	Hex string
}

// ID returns the symbol identifier used throughout deck and layout code.
func (s Symbol) ID() string { return s.Hex }

// Provider supplies a renderable image for a symbol. Implementations must be
// safe for concurrent use: deck rendering loads assets from multiple
// goroutines.
type Provider interface {
	Load(sym Symbol) (image.Image, error)
}

// DirProvider loads OpenMoji PNG assets from a local directory laid out as
// <root>/<mode>/<group>/<hex>.png.
type DirProvider struct {
	Root string
}

// NewDirProvider creates a provider rooted at dir.
func NewDirProvider(dir string) *DirProvider {
	return &DirProvider{Root: dir}
}

// Load reads and decodes the symbol's PNG asset.
func (p *DirProvider) Load(sym Symbol) (image.Image, error) {
	path := filepath.Join(p.Root, sym.Mode, sym.Group, sym.Hex+".png")
	img, err := imaging.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("emoji asset %s/%s/%s.png not found under %s", sym.Mode, sym.Group, sym.Hex, p.Root)
		}
		return nil, fmt.Errorf("load emoji %s: %w", sym.Hex, err)
	}
	return img, nil
}

// Sort orders symbols by identifier in place and returns the slice.
// Deck assembly relies on this order for reproducibility.
func Sort(syms []Symbol) []Symbol {
	sort.Slice(syms, func(i, j int) bool { return syms[i].Hex < syms[j].Hex })
	return syms
}

// Dedupe returns symbols with duplicate identifiers removed, keeping the
// first occurrence and preserving order.
func Dedupe(syms []Symbol) []Symbol {
	seen := make(map[string]bool, len(syms))
	out := syms[:0:0]
	for _, s := range syms {
		if seen[s.Hex] {
			continue
		}
		seen[s.Hex] = true
		out = append(out, s)
	}
	return out
}
