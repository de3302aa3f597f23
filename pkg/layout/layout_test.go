package layout

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/mkoenig/dobble/pkg/packing"
)

func symbols(n int) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = fmt.Sprintf("sym-%02d", i)
	}
	return s
}

func TestCardNonOverlap(t *testing.T) {
	// Sweep packing types, symbol counts and seeds; the invariant must
	// hold for every combination.
	for _, typ := range packing.Types() {
		for _, n := range []int{5, 7, 8, 12, 20} {
			for seed := uint64(0); seed < 20; seed++ {
				cfg := DefaultConfig()
				cfg.Packing = typ
				cfg.Seed = seed

				l, err := Card(symbols(n), cfg)
				if err != nil {
					t.Fatalf("Card(%d symbols, %q, seed %d) failed: %v", n, typ, seed, err)
				}
				for i, a := range l.Placements {
					if math.Hypot(a.X, a.Y)+a.Radius > 1+overlapEps {
						t.Errorf("%q/%d seed %d: placement %d outside card", typ, n, seed, i)
					}
					for j := i + 1; j < len(l.Placements); j++ {
						b := l.Placements[j]
						d := math.Hypot(b.X-a.X, b.Y-a.Y)
						if d < a.Radius+b.Radius-overlapEps {
							t.Errorf("%q/%d seed %d: placements %d and %d overlap", typ, n, seed, i, j)
						}
					}
				}
			}
		}
	}
}

func TestCardRadiusBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinScale = 0.6
	cfg.MaxScale = 0.9
	cfg.Seed = 7

	l, err := Card(symbols(8), cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range l.Placements {
		lo := cfg.MinScale * p.SlotRadius
		hi := cfg.MaxScale * p.SlotRadius
		if p.Radius < lo || p.Radius > hi {
			t.Errorf("placement %d radius %v outside [%v, %v]", i, p.Radius, lo, hi)
		}
	}
}

func TestCardReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 12345

	a, err := Card(symbols(8), cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Card(symbols(8), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical seeds produced different layouts")
	}

	cfg.Seed = 12346
	c, err := Card(symbols(8), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical layouts")
	}
}

func TestCardStableAssignmentWithoutShuffle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shuffle = false
	cfg.Seed = 3

	l, err := Card([]string{"c", "a", "b"}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	got := []string{l.Placements[0].Symbol, l.Placements[1].Symbol, l.Placements[2].Symbol}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slot assignment = %v, want identifier order %v", got, want)
	}
}

func TestCardEverySymbolPlaced(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99

	syms := symbols(10)
	l, err := Card(syms, cfg)
	if err != nil {
		t.Fatal(err)
	}
	placed := make(map[string]bool, len(l.Placements))
	for _, p := range l.Placements {
		placed[p.Symbol] = true
	}
	for _, s := range syms {
		if !placed[s] {
			t.Errorf("symbol %q missing from layout", s)
		}
	}
}

func TestCardRotationRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RotationRange = 45
	cfg.Seed = 11

	l, err := Card(symbols(6), cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range l.Placements {
		if p.Rotation < 0 || p.Rotation >= 45 {
			t.Errorf("placement %d rotation %v outside [0, 45)", i, p.Rotation)
		}
	}
}

func TestCardUnsupportedCount(t *testing.T) {
	cfg := DefaultConfig()
	_, err := Card(symbols(21), cfg)
	if !errors.Is(err, packing.ErrUnsupportedCount) {
		t.Errorf("error = %v, want ErrUnsupportedCount", err)
	}

	cfg.Packing = packing.TypeCCIB
	_, err = Card(symbols(3), cfg) // power-law tables start at 5
	if !errors.Is(err, packing.ErrUnsupportedCount) {
		t.Errorf("error = %v, want ErrUnsupportedCount", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"min above max", func(c *Config) { c.MinScale = 0.9; c.MaxScale = 0.5 }},
		{"zero min scale", func(c *Config) { c.MinScale = 0 }},
		{"negative min scale", func(c *Config) { c.MinScale = -0.1 }},
		{"max scale above one", func(c *Config) { c.MaxScale = 1.5 }},
		{"negative jitter", func(c *Config) { c.Jitter = -0.2 }},
		{"jitter of one", func(c *Config) { c.Jitter = 1 }},
		{"negative rotation", func(c *Config) { c.RotationRange = -10 }},
		{"rotation above 360", func(c *Config) { c.RotationRange = 720 }},
		{"unknown packing", func(c *Config) { c.Packing = "square" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if _, lerr := Card(symbols(7), cfg); !errors.Is(lerr, ErrInvalidConfig) {
				t.Errorf("Card() = %v, want ErrInvalidConfig", lerr)
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestCardRejectsDuplicates(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := Card([]string{"a", "b", "a"}, cfg); err == nil {
		t.Error("Card accepted duplicate symbols")
	}
}

func TestCardRejectsEmpty(t *testing.T) {
	if _, err := Card(nil, DefaultConfig()); err == nil {
		t.Error("Card accepted an empty card")
	}
}

func TestOverlapErrorMessage(t *testing.T) {
	e := &OverlapError{I: 2, J: 5}
	if e.Error() == "" || !errors.Is(e, ErrOverlap) {
		t.Error("OverlapError not wired to ErrOverlap")
	}
	boundary := &OverlapError{I: 1, J: -1}
	if boundary.Error() == "" {
		t.Error("boundary OverlapError has empty message")
	}
}
