package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mkoenig/dobble/pkg/design"
	"github.com/mkoenig/dobble/pkg/emoji"
)

// ReadJSON reads a deck from JSON and validates it: card sizes, index
// ranges, unique hexcodes, and the pairwise shared-symbol property.
func ReadJSON(r io.Reader) (*design.Deck, []emoji.Symbol, error) {
	var in deckJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, nil, fmt.Errorf("import deck: %w", err)
	}

	if in.SymbolsPerCard < 2 {
		return nil, nil, fmt.Errorf("import deck: symbols_per_card %d is below 2", in.SymbolsPerCard)
	}
	if len(in.Cards) == 0 {
		return nil, nil, fmt.Errorf("import deck: no cards")
	}
	if len(in.Symbols) == 0 {
		return nil, nil, fmt.Errorf("import deck: no symbols")
	}

	symbols := make([]emoji.Symbol, len(in.Symbols))
	seen := make(map[string]bool, len(in.Symbols))
	for i, s := range in.Symbols {
		if s.Hex == "" {
			return nil, nil, fmt.Errorf("import deck: symbol %d has no hexcode", i)
		}
		if seen[s.Hex] {
			return nil, nil, fmt.Errorf("import deck: duplicate hexcode %q", s.Hex)
		}
		seen[s.Hex] = true
		symbols[i] = emoji.Symbol{Name: s.Name, Mode: s.Mode, Group: s.Group, Hex: s.Hex}
	}

	deck := &design.Deck{
		SymbolsPerCard: in.SymbolsPerCard,
		Symbols:        len(symbols),
		Complete:       in.Complete,
		Cards:          make([]design.Card, len(in.Cards)),
	}
	for i, card := range in.Cards {
		for _, s := range card {
			if s < 0 || s >= len(symbols) {
				return nil, nil, fmt.Errorf("import deck: card %d references symbol %d, have %d symbols", i, s, len(symbols))
			}
		}
		deck.Cards[i] = append(design.Card(nil), card...)
	}

	if err := deck.Verify(); err != nil {
		return nil, nil, fmt.Errorf("import deck: %w", err)
	}
	return deck, symbols, nil
}

// ImportJSON reads a deck from a file path.
func ImportJSON(path string) (*design.Deck, []emoji.Symbol, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("import deck: %w", err)
	}
	defer f.Close()

	return ReadJSON(f)
}
