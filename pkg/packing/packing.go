// Package packing provides precomputed circle packings of the unit disk.
//
// A packing places n non-overlapping circles inside the unit disk. Centers
// come from embedded coordinate tables (one text file per packing type and
// circle count); per-circle radii are derived from the packing type's radius
// profile, scaled so the largest circle matches the tabulated maximum
// radius. All tables are loaded once and shared read-only, so lookups are
// safe for concurrent use without locking.
package packing

import (
	"bufio"
	"embed"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
)

//go:embed data
var dataFS embed.FS

// Type identifies a circle packing family. The names follow the Packomania
// convention: cci packs equal circles, the other families pack circles whose
// radii follow a power-law profile in the circle index.
type Type string

const (
	// TypeCCI packs n equal circles.
	TypeCCI Type = "cci"
	// TypeCCIB packs circles with radii proportional to i^(-1/5).
	TypeCCIB Type = "ccib"
	// TypeCCIC packs circles with radii proportional to i^(-2/3).
	TypeCCIC Type = "ccic"
	// TypeCCIR packs circles with radii proportional to sqrt(i).
	TypeCCIR Type = "ccir"
	// TypeCCIS packs circles with radii proportional to i^(-1/2).
	TypeCCIS Type = "ccis"
)

// profiles maps each packing type to its radius profile function.
// Profile values are sorted ascending before scaling, so row i of a
// coordinate table always pairs with the i-th smallest radius regardless of
// whether the profile increases or decreases in the circle index.
var profiles = map[Type]func(i int) float64{
	TypeCCI:  func(int) float64 { return 1 },
	TypeCCIB: func(i int) float64 { return math.Pow(float64(i), -1.0/5.0) },
	TypeCCIC: func(i int) float64 { return math.Pow(float64(i), -2.0/3.0) },
	TypeCCIR: func(i int) float64 { return math.Sqrt(float64(i)) },
	TypeCCIS: func(i int) float64 { return math.Pow(float64(i), -1.0/2.0) },
}

// Circle is one packed circle in unit-disk coordinates: the center lies
// within distance 1-R of the origin.
type Circle struct {
	X, Y float64
	R    float64
}

// Packing is an immutable arrangement of non-overlapping circles in the
// unit disk, ordered by ascending radius.
type Packing struct {
	Type    Type
	Count   int
	Circles []Circle
}

// Types returns the supported packing types in a fixed order.
func Types() []Type {
	return []Type{TypeCCI, TypeCCIB, TypeCCIC, TypeCCIR, TypeCCIS}
}

// Valid reports whether t names a known packing type.
func Valid(t Type) bool {
	_, ok := profiles[t]
	return ok
}

var (
	loadOnce sync.Once
	loadErr  error
	tables   map[Type]map[int]*Packing
)

// Lookup returns the packing of n circles for the given type. The result is
// shared and must not be mutated.
//
// Lookup fails with an error matching ErrUnsupportedCount when the type has
// no table entry for n, and with ErrUnknownType for unrecognized types.
func Lookup(t Type, n int) (*Packing, error) {
	if !Valid(t) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	loadOnce.Do(loadAll)
	if loadErr != nil {
		return nil, loadErr
	}
	p, ok := tables[t][n]
	if !ok {
		return nil, &UnsupportedCountError{Type: t, Count: n}
	}
	return p, nil
}

// Counts returns the sorted circle counts available for a packing type.
func Counts(t Type) []int {
	loadOnce.Do(loadAll)
	if loadErr != nil || !Valid(t) {
		return nil
	}
	counts := make([]int, 0, len(tables[t]))
	for n := range tables[t] {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	return counts
}

// loadAll parses every embedded table into process-wide read-only state.
func loadAll() {
	tables = make(map[Type]map[int]*Packing, len(profiles))
	for _, t := range Types() {
		byCount, err := loadType(t)
		if err != nil {
			loadErr = fmt.Errorf("packing tables for %q: %w", t, err)
			return
		}
		tables[t] = byCount
	}
}

func loadType(t Type) (map[int]*Packing, error) {
	maxRadii, err := readRadiusFile(t)
	if err != nil {
		return nil, err
	}

	byCount := make(map[int]*Packing, len(maxRadii))
	for n, rMax := range maxRadii {
		centers, err := readCoordinates(t, n)
		if err != nil {
			return nil, err
		}
		radii := computeRadii(t, n, rMax)
		circles := make([]Circle, n)
		for i := range circles {
			circles[i] = Circle{X: centers[i][0], Y: centers[i][1], R: radii[i]}
		}
		byCount[n] = &Packing{Type: t, Count: n, Circles: circles}
	}
	return byCount, nil
}

// readRadiusFile parses data/<type>/radius.txt, mapping circle count to the
// radius of the largest circle in that packing.
func readRadiusFile(t Type) (map[int]float64, error) {
	f, err := dataFS.Open(fmt.Sprintf("data/%s/radius.txt", t))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	radii := make(map[int]float64)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("radius.txt: bad count %q", fields[0])
		}
		r, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("radius.txt: bad radius %q", fields[1])
		}
		radii[n] = r
	}
	return radii, sc.Err()
}

// readCoordinates parses data/<type>/<type><n>.txt: one circle per line as
// "index x y" with normalized coordinates in [-1, 1].
func readCoordinates(t Type, n int) ([][2]float64, error) {
	name := fmt.Sprintf("data/%s/%s%d.txt", t, t, n)
	f, err := dataFS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var centers [][2]float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			continue
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad x %q", name, fields[1])
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad y %q", name, fields[2])
		}
		centers = append(centers, [2]float64{x, y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(centers) != n {
		return nil, fmt.Errorf("%s: %d coordinates, want %d", name, len(centers), n)
	}
	return centers, nil
}

// computeRadii derives the n circle radii for a packing type: profile values
// sorted ascending and scaled so the largest equals rMax.
func computeRadii(t Type, n int, rMax float64) []float64 {
	fn := profiles[t]
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = fn(i + 1)
	}
	sort.Float64s(vals)

	ratio := rMax / vals[n-1]
	radii := make([]float64, n)
	for i, v := range vals {
		radii[i] = v * ratio
	}
	return radii
}

// Validate checks the packing invariants: all circles lie inside the unit
// disk, radii are ascending, and no two circles overlap (within eps).
func (p *Packing) Validate(eps float64) error {
	for i, c := range p.Circles {
		if math.Hypot(c.X, c.Y)+c.R > 1+eps {
			return fmt.Errorf("circle %d of %s/%d extends outside the unit disk", i, p.Type, p.Count)
		}
		if i > 0 && c.R < p.Circles[i-1].R {
			return fmt.Errorf("radii of %s/%d not ascending at index %d", p.Type, p.Count, i)
		}
		for j := i + 1; j < len(p.Circles); j++ {
			o := p.Circles[j]
			if math.Hypot(o.X-c.X, o.Y-c.Y) < c.R+o.R-eps {
				return fmt.Errorf("circles %d and %d of %s/%d overlap", i, j, p.Type, p.Count)
			}
		}
	}
	return nil
}
