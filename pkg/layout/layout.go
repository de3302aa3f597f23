// Package layout arranges a card's symbols inside the unit-disk card face.
//
// Each symbol occupies one slot of a precomputed circle packing
// (pkg/packing). The packer shrinks every slot circle by a per-symbol random
// factor, nudges it within the freed slack, and spins the whole arrangement,
// so cards with the same symbol count still look different. Because a circle
// never leaves its original slot, the non-overlap guarantee of the base
// packing carries over to the final layout; a validation pass re-checks it
// anyway and reports violations as ErrOverlap.
//
// All randomness is drawn from a PCG stream seeded by Config.Seed, making
// layouts bit-for-bit reproducible.
package layout

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/mkoenig/dobble/pkg/packing"
)

// overlapEps absorbs floating-point noise when re-validating distances.
const overlapEps = 1e-9

// Config controls how a card's symbols are placed.
type Config struct {
	// Packing selects the circle packing family.
	Packing packing.Type

	// MinScale and MaxScale bound the per-symbol radius scale factor,
	// relative to the slot radius. Both must lie in (0, 1] with
	// MinScale <= MaxScale, so scaling can only shrink a circle.
	MinScale float64
	MaxScale float64

	// Jitter is the fraction of the freed slack (slot radius minus final
	// radius) used to displace a circle from its slot center. In [0, 1).
	Jitter float64

	// RotationRange bounds, in degrees, both the whole-layout spin around
	// the card center and each symbol's own rotation. In [0, 360].
	RotationRange float64

	// Shuffle randomizes the symbol-to-slot assignment. When false,
	// symbols are assigned to slots in identifier order.
	Shuffle bool

	// Seed seeds the layout's random stream.
	Seed uint64
}

// DefaultConfig returns the layout configuration used by the CLI defaults:
// equal-circle packing, radii between 80% and 100% of the slot, half the
// slack used for jitter, and free rotation.
func DefaultConfig() Config {
	return Config{
		Packing:       packing.TypeCCI,
		MinScale:      0.8,
		MaxScale:      1.0,
		Jitter:        0.5,
		RotationRange: 360,
		Shuffle:       true,
	}
}

// Validate checks the configuration bounds and reports the first violation
// as an error matching ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !packing.Valid(c.Packing):
		return &InvalidConfigError{Field: "Packing", Reason: fmt.Sprintf("unknown packing type %q", c.Packing)}
	case c.MinScale <= 0 || c.MinScale > 1:
		return &InvalidConfigError{Field: "MinScale", Reason: fmt.Sprintf("%v outside (0, 1]", c.MinScale)}
	case c.MaxScale <= 0 || c.MaxScale > 1:
		return &InvalidConfigError{Field: "MaxScale", Reason: fmt.Sprintf("%v outside (0, 1]", c.MaxScale)}
	case c.MinScale > c.MaxScale:
		return &InvalidConfigError{Field: "MinScale", Reason: fmt.Sprintf("%v greater than MaxScale %v", c.MinScale, c.MaxScale)}
	case c.Jitter < 0 || c.Jitter >= 1:
		return &InvalidConfigError{Field: "Jitter", Reason: fmt.Sprintf("%v outside [0, 1)", c.Jitter)}
	case c.RotationRange < 0 || c.RotationRange > 360:
		return &InvalidConfigError{Field: "RotationRange", Reason: fmt.Sprintf("%v outside [0, 360]", c.RotationRange)}
	}
	return nil
}

// Placement is one symbol's position on the card face, in unit-disk
// coordinates centered at the origin.
type Placement struct {
	// Symbol is the symbol identifier occupying this circle.
	Symbol string

	// X, Y locate the circle center.
	X, Y float64

	// Radius is the final circle radius after scaling.
	Radius float64

	// SlotRadius is the radius of the underlying packing slot.
	SlotRadius float64

	// Rotation is the symbol's own rotation in degrees, counterclockwise.
	Rotation float64
}

// CardLayout is the computed arrangement for a single card. It is consumed
// by a renderer and holds no references to shared mutable state.
type CardLayout struct {
	Packing    packing.Type
	Placements []Placement
}

// Card computes the layout for the given symbol identifiers.
//
// Symbols are deduplicated-checked (duplicates are an error), sorted by
// identifier for a stable slot assignment, optionally shuffled by the seeded
// stream, and placed into the packing slots for len(symbols) circles.
//
// Errors: ErrUnsupportedCount when no packing table covers the symbol count,
// ErrInvalidConfig for bad configuration, and ErrOverlap if the final
// arrangement violates the non-overlap invariant (which indicates a bug or
// corrupt packing data, not a user mistake).
func Card(symbols []string, cfg Config) (*CardLayout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("layout: empty card")
	}

	ordered := make([]string, len(symbols))
	copy(ordered, symbols)
	sort.Strings(ordered)
	for i := 1; i < len(ordered); i++ {
		if ordered[i] == ordered[i-1] {
			return nil, fmt.Errorf("layout: duplicate symbol %q in card", ordered[i])
		}
	}

	pack, err := packing.Lookup(cfg.Packing, len(ordered))
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0xdeadbeef))

	// Draw order is fixed: spin, assignment, then per-slot samples. Adding
	// draws or reordering them changes every seeded layout.
	spin := rng.Float64() * cfg.RotationRange * math.Pi / 180
	sinS, cosS := math.Sin(spin), math.Cos(spin)

	assign := make([]int, len(ordered))
	for i := range assign {
		assign[i] = i
	}
	if cfg.Shuffle {
		assign = rng.Perm(len(ordered))
	}

	placements := make([]Placement, len(ordered))
	for i, slot := range pack.Circles {
		scale := cfg.MinScale + rng.Float64()*(cfg.MaxScale-cfg.MinScale)
		radius := slot.R * scale

		slack := slot.R - radius
		jitterAngle := rng.Float64() * 2 * math.Pi
		jitterDist := rng.Float64() * cfg.Jitter * slack

		x := slot.X + jitterDist*math.Cos(jitterAngle)
		y := slot.Y + jitterDist*math.Sin(jitterAngle)

		placements[i] = Placement{
			Symbol:     ordered[assign[i]],
			X:          x*cosS - y*sinS,
			Y:          x*sinS + y*cosS,
			Radius:     radius,
			SlotRadius: slot.R,
			Rotation:   rng.Float64() * cfg.RotationRange,
		}
	}

	l := &CardLayout{Packing: cfg.Packing, Placements: placements}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// validate re-checks the non-overlap and containment invariants after
// scaling and jitter.
func (l *CardLayout) validate() error {
	for i, a := range l.Placements {
		if math.Hypot(a.X, a.Y)+a.Radius > 1+overlapEps {
			return &OverlapError{I: i, J: -1}
		}
		for j := i + 1; j < len(l.Placements); j++ {
			b := l.Placements[j]
			if math.Hypot(b.X-a.X, b.Y-a.Y) < a.Radius+b.Radius-overlapEps {
				return &OverlapError{I: i, J: j}
			}
		}
	}
	return nil
}
