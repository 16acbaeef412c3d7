// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Read-only node and edge catalog accessors plus the textual dump.

package core

import (
	"fmt"
	"slices"
	"strings"
)

// NodeCount returns the number of nodes; identities are exactly 0..NodeCount()-1.
func (g *Graph[T]) NodeCount() int {
	return len(g.nodes)
}

// Node returns the node with identity id.
func (g *Graph[T]) Node(id int) (Node[T], bool) {
	if !g.inRange(id) {
		var zero Node[T]
		return zero, false
	}

	return g.nodes[id], true
}

// Nodes returns a copy of the node sequence in identity order.
func (g *Graph[T]) Nodes() []Node[T] {
	return slices.Clone(g.nodes)
}

// Values returns the node payloads in identity order.
func (g *Graph[T]) Values() []T {
	out := make([]T, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Value
	}

	return out
}

// Contains reports whether a node equal to n is present, at any identity.
func (g *Graph[T]) Contains(n Node[T]) bool {
	_, ok := g.find(n)
	return ok
}

// NodesWith returns, in ascending order, the identities of the nodes holding value.
// An absent value yields an empty slice.
func (g *Graph[T]) NodesWith(value T) []int {
	ids := slices.Clone(g.index[value])
	if ids == nil {
		return []int{}
	}

	return ids
}

// EdgeCount returns the number of distinct edges.
func (g *Graph[T]) EdgeCount() int {
	n := 0
	for _, adj := range g.adjacency {
		n += len(adj)
	}
	if !g.directed {
		n /= 2
	}

	return n
}

// Edges returns each edge once, ordered by the identity of the adjacency entry
// holding it and then by neighbor identity. Undirected edges are reported from
// their lower-identity endpoint.
//
// Complexity: O(V + E log E).
func (g *Graph[T]) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for i, adj := range g.adjacency {
		for _, nbr := range adj.Neighbors() {
			if g.directed || i < nbr {
				out = append(out, adj[nbr])
			}
		}
	}

	return out
}

// Describe renders the graph for debugging: one "Id: <id>, Value: <value>" line
// per node, then every edge as one "id: <id>, direction: <direction>" line per
// endpoint.
func (g *Graph[T]) Describe() string {
	var sb strings.Builder
	kind := "undirected"
	if g.directed {
		kind = "directed"
	}
	fmt.Fprintf(&sb, "graph (%s): %d nodes, %d edges\n", kind, g.NodeCount(), g.EdgeCount())
	for _, n := range g.nodes {
		fmt.Fprintf(&sb, "  %s\n", n)
	}
	for _, e := range g.Edges() {
		sb.WriteString("  edge:\n")
		for _, line := range strings.Split(e.String(), "\n") {
			fmt.Fprintf(&sb, "     %s\n", line)
		}
	}

	return sb.String()
}
