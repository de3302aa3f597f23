package render

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkoenig/dobble/pkg/design"
	"github.com/mkoenig/dobble/pkg/emoji"
	"github.com/mkoenig/dobble/pkg/layout"
)

// fakeProvider serves a solid opaque square for every symbol.
type fakeProvider struct {
	side int
}

func (p fakeProvider) Load(emoji.Symbol) (image.Image, error) {
	img := image.NewNRGBA(image.Rect(0, 0, p.side, p.side))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img, nil
}

func testSymbols(n int) ([]emoji.Symbol, map[string]emoji.Symbol) {
	all := emoji.Classic()[:n]
	index := make(map[string]emoji.Symbol, n)
	for _, s := range all {
		index[s.ID()] = s
	}
	return all, index
}

func testLayout(t *testing.T, n int) *layout.CardLayout {
	t.Helper()
	syms, _ := testSymbols(n)
	ids := make([]string, n)
	for i, s := range syms {
		ids[i] = s.ID()
	}
	l, err := layout.Card(ids, layout.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestCardImage(t *testing.T) {
	l := testLayout(t, 3)
	_, index := testSymbols(3)

	img, err := Card(l, index, fakeProvider{side: 32}, CardOptions{Size: 256})
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 256 {
		t.Fatalf("card bounds = %v, want 256x256", img.Bounds())
	}

	// Corners lie outside the card disk and stay transparent.
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Error("corner pixel is not transparent")
	}
	// The center lies inside the white disk, so alpha is opaque.
	if _, _, _, a := img.At(128, 128).RGBA(); a == 0 {
		t.Error("center pixel is transparent")
	}
}

func TestCardUnknownSymbol(t *testing.T) {
	l := testLayout(t, 3)
	if _, err := Card(l, map[string]emoji.Symbol{}, fakeProvider{side: 8}, CardOptions{Size: 64}); err == nil {
		t.Error("Card succeeded with an empty symbol index")
	}
}

func TestCardRejectsBadPadding(t *testing.T) {
	l := testLayout(t, 3)
	_, index := testSymbols(3)
	for _, padding := range []float64{-0.1, 1, 2} {
		if _, err := Card(l, index, fakeProvider{side: 8}, CardOptions{Padding: padding}); err == nil {
			t.Errorf("Card accepted padding %v", padding)
		}
	}
}

func TestFitToDisk(t *testing.T) {
	img, _ := fakeProvider{side: 100}.Load(emoji.Symbol{})

	fitted := fitToDisk(img, 0.1)
	if fitted.Bounds().Dx() != 100 || fitted.Bounds().Dy() != 100 {
		t.Fatalf("fitted bounds = %v, want 100x100", fitted.Bounds())
	}
	if norm := contentNorm(fitted); norm > 45+1e-9 {
		t.Errorf("content norm %v exceeds padded radius 45", norm)
	}
}

func TestFitToDiskTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	fitted := fitToDisk(img, 0.1)
	if contentNorm(fitted) != 0 {
		t.Error("transparent image gained content")
	}
}

func TestSquared(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 4))
	sq := squared(img)
	if sq.Bounds().Dx() != 10 || sq.Bounds().Dy() != 10 {
		t.Errorf("squared bounds = %v, want 10x10", sq.Bounds())
	}
}

func TestContentNorm(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img.SetNRGBA(5, 5, color.NRGBA{A: 255})

	want := math.Hypot(0.5, 0.5)
	if got := contentNorm(img); math.Abs(got-want) > 1e-12 {
		t.Errorf("contentNorm = %v, want %v", got, want)
	}
}

func TestWriteDeck(t *testing.T) {
	deck, err := design.Generate(2)
	if err != nil {
		t.Fatal(err)
	}
	all, index := testSymbols(deck.Symbols)
	cards := make([][]emoji.Symbol, len(deck.Cards))
	artifacts := make([][]byte, len(deck.Cards))
	for i, card := range deck.Cards {
		ids := make([]string, len(card))
		for j, s := range card {
			cards[i] = append(cards[i], all[s])
			ids[j] = all[s].ID()
		}
		l, err := layout.Card(ids, layout.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		img, err := Card(l, index, fakeProvider{side: 16}, CardOptions{Size: 64})
		if err != nil {
			t.Fatal(err)
		}
		if artifacts[i], err = EncodePNG(img); err != nil {
			t.Fatal(err)
		}
	}

	dir := t.TempDir()
	res, err := WriteDeck(dir, "mini", artifacts, cards)
	if err != nil {
		t.Fatal(err)
	}

	for i, name := range res.CardFiles {
		want := fmt.Sprintf("mini_%03d.png", i+1)
		if name != want {
			t.Errorf("card file %d = %q, want %q", i, name, want)
		}
		if _, err := os.Stat(filepath.Join(res.Dir, name)); err != nil {
			t.Errorf("missing card file %q: %v", name, err)
		}
	}

	f, err := os.Open(filepath.Join(res.Dir, "info", "deck.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(cards)+1 {
		t.Errorf("deck.csv has %d rows, want %d", len(rows), len(cards)+1)
	}

	g, err := os.Open(filepath.Join(res.Dir, "info", "emojis.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	legend, err := csv.NewReader(g).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(legend) != deck.Symbols+1 {
		t.Errorf("emojis.csv has %d rows, want %d", len(legend), deck.Symbols+1)
	}

	// A second run against the same directory must refuse to overwrite.
	if _, err := WriteDeck(dir, "mini", artifacts, cards); err == nil {
		t.Error("WriteDeck overwrote an existing deck directory")
	}
}

func TestWriteDeckEmpty(t *testing.T) {
	if _, err := WriteDeck(t.TempDir(), "deck", nil, nil); err == nil {
		t.Error("WriteDeck accepted an empty deck")
	}
}

func TestWriteDeckArtifactMismatch(t *testing.T) {
	all, _ := testSymbols(2)
	if _, err := WriteDeck(t.TempDir(), "deck", [][]byte{{1}, {2}}, [][]emoji.Symbol{all}); err == nil {
		t.Error("WriteDeck accepted mismatched artifacts")
	}
}
