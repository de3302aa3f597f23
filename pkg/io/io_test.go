package io

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/mkoenig/dobble/pkg/design"
	"github.com/mkoenig/dobble/pkg/emoji"
)

func testDeck(t *testing.T) (*design.Deck, []emoji.Symbol) {
	t.Helper()
	deck, err := design.Generate(3)
	if err != nil {
		t.Fatal(err)
	}
	return deck, emoji.Classic()[:deck.Symbols]
}

func TestRoundTrip(t *testing.T) {
	deck, symbols := testDeck(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, deck, symbols); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	got, gotSymbols, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if !reflect.DeepEqual(got, deck) {
		t.Errorf("deck round trip mismatch:\ngot  %+v\nwant %+v", got, deck)
	}
	if !reflect.DeepEqual(gotSymbols, symbols) {
		t.Errorf("symbol round trip mismatch")
	}
}

func TestExportSymbolCountMismatch(t *testing.T) {
	deck, symbols := testDeck(t)
	if err := WriteJSON(&bytes.Buffer{}, deck, symbols[:3]); err == nil {
		t.Error("WriteJSON accepted a short symbol list")
	}
	if err := WriteJSON(&bytes.Buffer{}, nil, nil); err == nil {
		t.Error("WriteJSON accepted a nil deck")
	}
}

func TestImportRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"empty cards", `{"symbols_per_card": 2, "symbols": [{"hexcode": "A"}], "cards": []}`},
		{"empty symbols", `{"symbols_per_card": 2, "symbols": [], "cards": [[0, 1]]}`},
		{"order below two", `{"symbols_per_card": 1, "symbols": [{"hexcode": "A"}], "cards": [[0]]}`},
		{"missing hexcode", `{"symbols_per_card": 2, "symbols": [{"name": "x"}, {"hexcode": "B"}, {"hexcode": "C"}], "cards": [[0, 1], [0, 2], [1, 2]]}`},
		{
			"duplicate hexcode",
			`{"symbols_per_card": 2, "symbols": [{"hexcode": "A"}, {"hexcode": "A"}, {"hexcode": "C"}], "cards": [[0, 1], [0, 2], [1, 2]]}`,
		},
		{
			"index out of range",
			`{"symbols_per_card": 2, "symbols": [{"hexcode": "A"}, {"hexcode": "B"}], "cards": [[0, 1], [0, 7]]}`,
		},
		{
			"cards share no symbol",
			`{"symbols_per_card": 2, "symbols": [{"hexcode": "A"}, {"hexcode": "B"}, {"hexcode": "C"}, {"hexcode": "D"}], "cards": [[0, 1], [2, 3]]}`,
		},
		{
			"unknown field",
			`{"symbols_per_card": 2, "bogus": true, "symbols": [{"hexcode": "A"}], "cards": [[0, 0]]}`,
		},
		{"not json", `]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ReadJSON(strings.NewReader(tt.json)); err == nil {
				t.Error("ReadJSON accepted invalid input")
			}
		})
	}
}

func TestExportImportFile(t *testing.T) {
	deck, symbols := testDeck(t)
	path := t.TempDir() + "/deck.json"

	if err := ExportJSON(path, deck, symbols); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	got, _, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	if len(got.Cards) != len(deck.Cards) {
		t.Errorf("imported %d cards, want %d", len(got.Cards), len(deck.Cards))
	}

	if _, _, err := ImportJSON(t.TempDir() + "/missing.json"); err == nil {
		t.Error("ImportJSON succeeded for a missing file")
	}
}
