// Package io provides JSON import and export for generated decks.
//
// # Overview
//
// This package serializes a deck (the combinatorial design plus its symbol
// assignment) to and from a simple JSON format. The format is designed for:
//
//   - Re-rendering a deck later with different layout or style options
//   - Integration with external tools that consume deck data
//   - Round-trip preservation: export, re-import, and render identically
//
// # JSON Format
//
//	{
//	  "symbols_per_card": 3,
//	  "complete": true,
//	  "symbols": [
//	    {"name": "anchor", "mode": "color", "group": "travel-places", "hexcode": "2693"},
//	    ...
//	  ],
//	  "cards": [
//	    [0, 1, 2],
//	    ...
//	  ]
//	}
//
// Cards reference symbols by index into the symbols array. Import validates
// the structure: every card has exactly symbols_per_card entries, indices are
// in range, hexcodes are unique, and any two cards share exactly one symbol.
//
// # Usage
//
// Use [ExportJSON] to write a deck to a file, or [WriteJSON] for any
// io.Writer. [ImportJSON] and [ReadJSON] are the inverses:
//
//	deck, symbols, err := io.ImportJSON("deck.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
package io
