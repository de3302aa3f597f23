// Package graph renders the card–symbol incidence structure of a deck as a
// Graphviz diagram. It exists for debugging and teaching: the bipartite
// incidence graph makes the projective-plane structure visible, with every
// pair of card nodes connected through exactly one shared symbol node.
package graph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mkoenig/dobble/pkg/design"
	"github.com/mkoenig/dobble/pkg/emoji"
)

// Options configures incidence graph rendering.
type Options struct {
	// Detailed labels symbol nodes with emoji names instead of indices.
	// Requires a symbol assignment in ToDOT.
	Detailed bool
}

// ToDOT converts a deck to Graphviz DOT format. Card nodes are drawn as
// boxes, symbol nodes as ellipses, with an edge for each incidence. symbols
// may be nil; it is only consulted for detailed labels.
func ToDOT(deck *design.Deck, symbols []emoji.Symbol, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph deck {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12];\n")
	buf.WriteString("\n")

	for i := range deck.Cards {
		fmt.Fprintf(&buf, "  %q [shape=box, style=\"rounded,filled\", fillcolor=white, label=%q];\n",
			cardID(i), fmt.Sprintf("card %d", i+1))
	}
	buf.WriteString("\n")
	for s := range deck.Symbols {
		fmt.Fprintf(&buf, "  %q [shape=ellipse, style=filled, fillcolor=lightgrey, label=%q];\n",
			symbolID(s), symbolLabel(s, symbols, opts))
	}

	buf.WriteString("\n")
	for i, card := range deck.Cards {
		for _, s := range card {
			fmt.Fprintf(&buf, "  %q -- %q;\n", cardID(i), symbolID(s))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func cardID(i int) string   { return fmt.Sprintf("c%d", i) }
func symbolID(s int) string { return fmt.Sprintf("s%d", s) }

func symbolLabel(s int, symbols []emoji.Symbol, opts Options) string {
	if opts.Detailed && s < len(symbols) && symbols[s].Name != "" {
		return symbols[s].Name
	}
	return fmt.Sprintf("%d", s)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// EdgeCount returns the number of incidences in the deck, which equals
// cards × symbols-per-card.
func EdgeCount(deck *design.Deck) int {
	n := 0
	for _, card := range deck.Cards {
		n += len(card)
	}
	return n
}
