package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout computation. Wrapped errors from pkg/packing
// (ErrUnsupportedCount, ErrUnknownType) pass through Card unchanged.
var (
	// ErrInvalidConfig is returned for configurations outside the
	// documented bounds.
	ErrInvalidConfig = errors.New("invalid layout config")

	// ErrOverlap is returned when a computed layout violates the
	// non-overlap invariant. This indicates a bug or corrupt packing
	// data and is not recoverable for the affected card.
	ErrOverlap = errors.New("layout circles overlap")
)

// InvalidConfigError reports the offending configuration field.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid layout config: %s: %s", e.Field, e.Reason)
}

// Unwrap makes the error match ErrInvalidConfig via errors.Is.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// OverlapError identifies the placements that violate the invariant.
// J is -1 when placement I extends outside the unit disk instead.
type OverlapError struct {
	I, J int
}

func (e *OverlapError) Error() string {
	if e.J < 0 {
		return fmt.Sprintf("layout invariant violated: placement %d outside card boundary", e.I)
	}
	return fmt.Sprintf("layout invariant violated: placements %d and %d overlap", e.I, e.J)
}

// Unwrap makes the error match ErrOverlap via errors.Is.
func (e *OverlapError) Unwrap() error { return ErrOverlap }
