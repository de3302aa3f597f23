package graph

import (
	"strings"
	"testing"

	"github.com/mkoenig/dobble/pkg/design"
	"github.com/mkoenig/dobble/pkg/emoji"
)

func TestToDOT(t *testing.T) {
	deck, err := design.Generate(3)
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(deck, nil, Options{})
	if !strings.HasPrefix(dot, "graph deck {") {
		t.Errorf("DOT does not open an undirected graph: %q", dot[:20])
	}

	// 7 cards, 7 symbols, 21 incidences for the Fano plane.
	if n := strings.Count(dot, "shape=box"); n != 7 {
		t.Errorf("DOT has %d card nodes, want 7", n)
	}
	if n := strings.Count(dot, "shape=ellipse"); n != 7 {
		t.Errorf("DOT has %d symbol nodes, want 7", n)
	}
	if n := strings.Count(dot, " -- "); n != EdgeCount(deck) {
		t.Errorf("DOT has %d edges, want %d", n, EdgeCount(deck))
	}
	if EdgeCount(deck) != 21 {
		t.Errorf("EdgeCount = %d, want 21", EdgeCount(deck))
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	deck, err := design.Generate(2)
	if err != nil {
		t.Fatal(err)
	}
	symbols := []emoji.Symbol{{Name: "anchor"}, {Name: "cactus"}, {Name: "dragon"}}

	dot := ToDOT(deck, symbols, Options{Detailed: true})
	for _, s := range symbols {
		if !strings.Contains(dot, s.Name) {
			t.Errorf("detailed DOT is missing symbol name %q", s.Name)
		}
	}

	plain := ToDOT(deck, symbols, Options{})
	if strings.Contains(plain, "anchor") {
		t.Error("plain DOT contains symbol names")
	}
}

func TestToDOTSymbolIndexFallback(t *testing.T) {
	deck, err := design.Generate(2)
	if err != nil {
		t.Fatal(err)
	}
	// Detailed with no assignment falls back to indices.
	dot := ToDOT(deck, nil, Options{Detailed: true})
	if !strings.Contains(dot, `label="0"`) {
		t.Error("detailed DOT without symbols is missing index labels")
	}
}
