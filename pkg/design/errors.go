package design

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOrder is returned when no deck can be constructed for the
// requested number of symbols per card.
var ErrUnsupportedOrder = errors.New("unsupported order")

// UnsupportedOrderError reports a symbols-per-card value for which neither
// the projective-plane construction nor a fallback design is available.
type UnsupportedOrderError struct {
	SymbolsPerCard int
	Reason         string
}

func (e *UnsupportedOrderError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("no deck design for %d symbols per card: %s", e.SymbolsPerCard, e.Reason)
	}
	return fmt.Sprintf("no deck design for %d symbols per card", e.SymbolsPerCard)
}

// Unwrap makes the error match ErrUnsupportedOrder via errors.Is.
func (e *UnsupportedOrderError) Unwrap() error { return ErrUnsupportedOrder }
