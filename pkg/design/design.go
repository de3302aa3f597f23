// Package design constructs Dobble-style deck designs: collections of
// fixed-size symbol sets (cards) in which any two cards share exactly one
// symbol.
//
// For k symbols per card with k-1 a prime power, the generator builds a
// finite projective plane of order k-1, giving the maximum possible deck of
// (k-1)^2 + (k-1) + 1 cards. For other k it falls back to a smaller pencil
// design (see Generate). Generation is deterministic: the same k always
// produces the same deck, card for card.
package design

import "fmt"

// Card is a set of symbol indices of fixed cardinality, sorted ascending.
// Symbol indices are dense: a deck over s symbols uses exactly 0..s-1.
type Card []int

// Deck is an ordered sequence of cards satisfying the Dobble property:
// every pair of distinct cards shares exactly one symbol.
type Deck struct {
	// SymbolsPerCard is the requested card size k.
	SymbolsPerCard int

	// Cards holds the generated cards in canonical order.
	Cards []Card

	// Symbols is the number of distinct symbols the deck uses.
	Symbols int

	// Complete reports whether the deck is a full projective plane
	// ((k-1)^2 + (k-1) + 1 cards). False for fallback designs.
	Complete bool
}

// Generate constructs the deck design for k symbols per card.
//
// When k-1 is a prime power (or k == 2, the triangle plane of order 1), the
// deck is the full projective plane of order k-1. Otherwise no projective
// plane of that order is available and Generate falls back to a pencil
// design: k cards that all share one hub symbol and are otherwise disjoint,
// using 1 + k(k-1) symbols. The fallback deck is valid but much smaller than
// the projective-plane bound; callers can detect it via Complete.
//
// Generate fails with an error matching ErrUnsupportedOrder when k < 2.
func Generate(k int) (*Deck, error) {
	if k < 2 {
		return nil, &UnsupportedOrderError{SymbolsPerCard: k, Reason: "need at least 2 symbols per card"}
	}

	n := k - 1
	if n == 1 {
		// Projective plane of order 1: a triangle.
		return &Deck{
			SymbolsPerCard: 2,
			Cards:          []Card{{0, 1}, {0, 2}, {1, 2}},
			Symbols:        3,
			Complete:       true,
		}, nil
	}

	if _, _, ok := primePower(n); ok {
		lines, err := projectivePlane(n)
		if err != nil {
			return nil, &UnsupportedOrderError{SymbolsPerCard: k, Reason: err.Error()}
		}
		cards := make([]Card, len(lines))
		for i, l := range lines {
			cards[i] = Card(l)
		}
		return &Deck{
			SymbolsPerCard: k,
			Cards:          cards,
			Symbols:        n*n + n + 1,
			Complete:       true,
		}, nil
	}

	return pencil(k), nil
}

// pencil builds the fallback design for card size k: every card contains the
// hub symbol 0 plus k-1 fresh symbols, so any two cards meet exactly in the
// hub. Deck size is k cards over 1 + k(k-1) symbols.
func pencil(k int) *Deck {
	cards := make([]Card, k)
	next := 1
	for i := range cards {
		c := make(Card, 0, k)
		c = append(c, 0)
		for range k - 1 {
			c = append(c, next)
			next++
		}
		cards[i] = c
	}
	return &Deck{
		SymbolsPerCard: k,
		Cards:          cards,
		Symbols:        next,
		Complete:       false,
	}
}

// Verify re-checks the deck invariants: every card has exactly
// SymbolsPerCard distinct symbols and every pair of cards shares exactly one
// symbol. It returns the first violation found.
func (d *Deck) Verify() error {
	for i, c := range d.Cards {
		if len(c) != d.SymbolsPerCard {
			return fmt.Errorf("card %d has %d symbols, want %d", i, len(c), d.SymbolsPerCard)
		}
		seen := make(map[int]bool, len(c))
		for _, s := range c {
			if seen[s] {
				return fmt.Errorf("card %d contains symbol %d twice", i, s)
			}
			seen[s] = true
		}
	}
	for i := range d.Cards {
		for j := i + 1; j < len(d.Cards); j++ {
			if n := intersectionSize(d.Cards[i], d.Cards[j]); n != 1 {
				return fmt.Errorf("cards %d and %d share %d symbols, want exactly 1", i, j, n)
			}
		}
	}
	return nil
}

func intersectionSize(a, b Card) int {
	set := make(map[int]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	n := 0
	for _, s := range b {
		if set[s] {
			n++
		}
	}
	return n
}

// MaxCards returns the theoretical maximum deck size for k symbols per card
// when a projective plane of order k-1 exists: (k-1)^2 + (k-1) + 1.
func MaxCards(k int) int {
	n := k - 1
	return n*n + n + 1
}
