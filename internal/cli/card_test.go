package cli

import (
	"testing"

	"github.com/mkoenig/dobble/pkg/emoji"
)

func TestResolveSymbolsByName(t *testing.T) {
	symbols, err := resolveSymbols([]string{"anchor", "cactus"}, "")
	if err != nil {
		t.Fatalf("resolveSymbols failed: %v", err)
	}
	if len(symbols) != 2 {
		t.Fatalf("got %d symbols, want 2", len(symbols))
	}
	if symbols[0].Name != "anchor" {
		t.Errorf("symbols[0].Name = %q, want %q", symbols[0].Name, "anchor")
	}
}

func TestResolveSymbolsByHex(t *testing.T) {
	catalog := emoji.Classic()
	symbols, err := resolveSymbols([]string{catalog[0].Hex, catalog[1].Hex}, "")
	if err != nil {
		t.Fatalf("resolveSymbols failed: %v", err)
	}
	if symbols[0].Hex != catalog[0].Hex {
		t.Errorf("symbols[0].Hex = %q, want %q", symbols[0].Hex, catalog[0].Hex)
	}
}

func TestResolveSymbolsUnknown(t *testing.T) {
	if _, err := resolveSymbols([]string{"anchor", "definitely-not-an-emoji"}, ""); err == nil {
		t.Error("expected error for unknown symbol")
	}
}

func TestResolveSymbolsDuplicate(t *testing.T) {
	if _, err := resolveSymbols([]string{"anchor", "anchor"}, ""); err == nil {
		t.Error("expected error for duplicate symbols")
	}
}

func TestResolveSymbolsModeOverride(t *testing.T) {
	symbols, err := resolveSymbols([]string{"anchor", "cactus"}, emoji.ModeBlack)
	if err != nil {
		t.Fatalf("resolveSymbols failed: %v", err)
	}
	for _, s := range symbols {
		if s.Mode != emoji.ModeBlack {
			t.Errorf("symbol %q mode = %q, want %q", s.Name, s.Mode, emoji.ModeBlack)
		}
	}
}
