package render

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkoenig/dobble/pkg/emoji"
)

// DeckResult describes a written deck directory.
type DeckResult struct {
	// Dir is the created deck directory.
	Dir string

	// CardFiles lists the card image file names in card order,
	// relative to Dir.
	CardFiles []string
}

// WriteDeck writes rendered card images and the deck metadata to disk:
//
//	<dir>/<name>/<name>_001.png ... card images
//	<dir>/<name>/info/deck.csv   card to symbol mapping
//	<dir>/<name>/info/emojis.csv symbol legend
//
// artifacts holds PNG bytes per card, aligned with cards. The deck
// directory must not already exist.
func WriteDeck(dir, name string, artifacts [][]byte, cards [][]emoji.Symbol) (*DeckResult, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("render: deck has no cards")
	}
	if len(artifacts) != len(cards) {
		return nil, fmt.Errorf("render: %d artifacts for %d cards", len(artifacts), len(cards))
	}
	if name == "" {
		name = "deck"
	}

	deckDir := filepath.Join(dir, name)
	if _, err := os.Stat(deckDir); err == nil {
		return nil, fmt.Errorf("render: deck directory %s already exists", deckDir)
	}
	infoDir := filepath.Join(deckDir, "info")
	if err := os.MkdirAll(infoDir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create deck directory: %w", err)
	}

	files := make([]string, len(cards))
	for i, data := range artifacts {
		files[i] = fmt.Sprintf("%s_%03d.png", name, i+1)
		if err := os.WriteFile(filepath.Join(deckDir, files[i]), data, 0o644); err != nil {
			return nil, fmt.Errorf("render: card %d: %w", i+1, err)
		}
	}

	if err := writeDeckCSV(filepath.Join(infoDir, "deck.csv"), files, cards); err != nil {
		return nil, err
	}
	if err := writeEmojiCSV(filepath.Join(infoDir, "emojis.csv"), cards); err != nil {
		return nil, err
	}

	return &DeckResult{
		Dir:       deckDir,
		CardFiles: files,
	}, nil
}

// writeDeckCSV records which symbols appear on which card file.
func writeDeckCSV(path string, files []string, cards [][]emoji.Symbol) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: write deck.csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"file"}
	for i := range cards[0] {
		header = append(header, fmt.Sprintf("emoji_%d", i+1))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, card := range cards {
		row := []string{files[i]}
		for _, s := range card {
			row = append(row, s.ID())
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeEmojiCSV records the symbol legend, sorted by identifier.
func writeEmojiCSV(path string, cards [][]emoji.Symbol) error {
	var syms []emoji.Symbol
	for _, card := range cards {
		syms = append(syms, card...)
	}
	syms = emoji.Dedupe(syms)
	emoji.Sort(syms)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: write emojis.csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"hexcode", "name", "group", "mode"}); err != nil {
		return err
	}
	for _, s := range syms {
		if err := w.Write([]string{s.Hex, s.Name, s.Group, s.Mode}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
