package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mkoenig/dobble/pkg/design"
	"github.com/mkoenig/dobble/pkg/emoji"
)

type deckJSON struct {
	SymbolsPerCard int          `json:"symbols_per_card"`
	Complete       bool         `json:"complete"`
	Symbols        []symbolJSON `json:"symbols"`
	Cards          [][]int      `json:"cards"`
}

type symbolJSON struct {
	Name  string `json:"name"`
	Mode  string `json:"mode"`
	Group string `json:"group"`
	Hex   string `json:"hexcode"`
}

// WriteJSON writes a deck and its symbol assignment as JSON. symbols[i] is
// the emoji assigned to design symbol i, so len(symbols) must equal
// deck.Symbols.
func WriteJSON(w io.Writer, deck *design.Deck, symbols []emoji.Symbol) error {
	if deck == nil {
		return fmt.Errorf("export deck: nil deck")
	}
	if len(symbols) != deck.Symbols {
		return fmt.Errorf("export deck: %d symbols for a design with %d", len(symbols), deck.Symbols)
	}

	out := deckJSON{
		SymbolsPerCard: deck.SymbolsPerCard,
		Complete:       deck.Complete,
		Symbols:        make([]symbolJSON, len(symbols)),
		Cards:          make([][]int, len(deck.Cards)),
	}
	for i, s := range symbols {
		out.Symbols[i] = symbolJSON{Name: s.Name, Mode: s.Mode, Group: s.Group, Hex: s.Hex}
	}
	for i, card := range deck.Cards {
		out.Cards[i] = append([]int(nil), card...)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("export deck: %w", err)
	}
	return nil
}

// ExportJSON writes a deck to a file path.
func ExportJSON(path string, deck *design.Deck, symbols []emoji.Symbol) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export deck: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, deck, symbols); err != nil {
		return err
	}
	return f.Close()
}
