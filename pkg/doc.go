// Package pkg provides the core libraries for Dobble deck generation.
//
// # Overview
//
// Dobble generates symbol-matching card decks: any two cards in a deck share
// exactly one symbol. The pkg directory is organized along the pipeline:
//
//  1. [design] - Combinatorial design (which symbols share a card)
//  2. [packing] - Embedded circle packing tables
//  3. [layout] - Placing a card's symbols on packed circles
//  4. [emoji] - Symbol catalog and image loading
//  5. [render] - Drawing cards and writing deck directories
//  6. [pipeline] - Orchestration (design → layout → render) with caching
//  7. [graph] - Incidence graph rendering for debugging
//  8. [io] - Deck JSON import/export
//
// # Architecture
//
// The typical data flow:
//
//	symbols per card (k)
//	         ↓
//	design.Generate          projective plane PG(2, k-1)
//	         ↓
//	layout.Card              circle packing + jitter + rotation
//	         ↓
//	render.Card              PNG per card
//	         ↓
//	render.WriteDeck         deck directory with info/ metadata
//
// The [pipeline] package ties these stages together and caches each stage's
// results, keyed on the stage inputs, so repeated runs are cheap.
package pkg
