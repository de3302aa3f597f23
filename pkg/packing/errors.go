package packing

import (
	"errors"
	"fmt"
)

// Sentinel errors for packing lookups.
var (
	// ErrUnknownType is returned for packing types without a profile.
	ErrUnknownType = errors.New("unknown packing type")

	// ErrUnsupportedCount is returned when a packing type has no table
	// entry for the requested circle count.
	ErrUnsupportedCount = errors.New("unsupported circle count")
)

// UnsupportedCountError reports a circle count with no packing table entry.
type UnsupportedCountError struct {
	Type  Type
	Count int
}

func (e *UnsupportedCountError) Error() string {
	return fmt.Sprintf("no %q packing with %d circles", e.Type, e.Count)
}

// Unwrap makes the error match ErrUnsupportedCount via errors.Is.
func (e *UnsupportedCountError) Unwrap() error { return ErrUnsupportedCount }
