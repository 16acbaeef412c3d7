// Package render turns graph snapshots into Graphviz DOT and SVG.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/fgraph/core"
)

// Options configures DOT output.
type Options struct {
	// Name is the graph name; empty means "G".
	Name string
	// Highlight lists identities drawn filled, e.g. a traversal's result.
	Highlight []int
	// RankDir sets the layout direction ("TB", "LR", ...); empty leaves the Graphviz default.
	RankDir string
}

// ToDOT renders g as Graphviz DOT. Directed graphs produce a digraph with "->"
// edges, undirected ones a graph with "--" edges. Nodes are named by identity
// and labelled "<id>: <value>". Edges appear in g.Edges order.
func ToDOT[T comparable](g *core.Graph[T], opts Options) string {
	kind, arrow := "graph", "--"
	if g.Directed() {
		kind, arrow = "digraph", "->"
	}
	name := opts.Name
	if name == "" {
		name = "G"
	}
	hl := make(map[int]bool, len(opts.Highlight))
	for _, id := range opts.Highlight {
		hl[id] = true
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s {\n", kind, dotQuote(name))
	if opts.RankDir != "" {
		fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.RankDir)
	}
	buf.WriteString("  node [shape=box, style=\"rounded\"];\n\n")

	for _, n := range g.Nodes() {
		attrs := "label=" + dotQuote(fmt.Sprintf("%d: %v", n.ID, n.Value))
		if hl[n.ID] {
			attrs += ", style=\"rounded,filled\", fillcolor=lightblue"
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", n.ID, attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d %s %d;\n", e.Source(), arrow, e.Target())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotEscaper escapes the two characters that end or alter a DOT quoted string.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote wraps s in double quotes for DOT. Every other rune, printable or
// not, passes through unchanged.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// RenderSVG lays out a DOT document with Graphviz and returns the SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
