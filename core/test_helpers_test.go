// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for fgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for building snapshots by folding Add/ConnectAt.
//   - Compare snapshots by content (values + topology by value), independent of stamps.

package core_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgraph/core"
)

// buildGraph folds Add over values and ConnectAt over edges.
func buildGraph(t *testing.T, directed bool, values []string, edges [][2]int) *core.Graph[string] {
	t.Helper()
	g := core.New[string](core.WithDirected(directed))
	for _, v := range values {
		g = g.Add(v)
	}
	var err error
	for _, e := range edges {
		g, err = g.ConnectAt(e[0], e[1])
		require.NoError(t, err, "ConnectAt(%d,%d)", e[0], e[1])
	}

	return g
}

// topology renders every edge as "value-value" (directed: "value->value"), sorted.
// Undirected pairs are written in ascending value order.
func topology(g *core.Graph[string]) []string {
	out := make([]string, 0, g.EdgeCount())
	sep := "-"
	if g.Directed() {
		sep = "->"
	}
	for _, e := range g.Edges() {
		a, _ := g.Node(e.Source())
		b, _ := g.Node(e.Target())
		if !g.Directed() && b.Value < a.Value {
			a, b = b, a
		}
		out = append(out, fmt.Sprintf("%s%s%s", a.Value, sep, b.Value))
	}
	slices.Sort(out)

	return out
}

// requireDense asserts the identity-density invariant and index consistency.
func requireDense(t *testing.T, g *core.Graph[string]) {
	t.Helper()
	for i, n := range g.Nodes() {
		require.Equal(t, i, n.ID, "node %v out of position", n)
		require.Contains(t, g.NodesWith(n.Value), i, "index misses %q at %d", n.Value, i)
		_, ok := g.EdgesAdjacentTo(i)
		require.True(t, ok, "adjacency entry missing for %d", i)
	}
	_, ok := g.EdgesAdjacentTo(g.NodeCount())
	require.False(t, ok, "adjacency entry past the end")
}
