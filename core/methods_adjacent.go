// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency and content queries.
// Determinism:
//   - Adjacency.Neighbors() and Graph.Neighbors() return identities ascending.
//   - Adjacency.Edges() is ordered by neighbor identity.
// Ownership:
//   - Every returned Adjacency is a fresh copy; callers may mutate it freely.

package core

import (
	"fmt"
	"maps"
	"slices"
)

// Neighbors returns the neighbor identities of the entry in ascending order.
// Complexity: O(d log d).
func (a Adjacency) Neighbors() []int {
	return slices.Sorted(maps.Keys(a))
}

// Edges returns the entry's edges ordered by neighbor identity.
// Complexity: O(d log d).
func (a Adjacency) Edges() []Edge {
	out := make([]Edge, 0, len(a))
	for _, nbr := range a.Neighbors() {
		out = append(out, a[nbr])
	}

	return out
}

// EdgesAdjacentTo returns the adjacency entry of identity id. ok is false when
// id is out of range; a node without edges yields an empty, non-nil entry.
// For directed graphs only outgoing edges are listed.
//
// Complexity: O(d) for the copy.
func (g *Graph[T]) EdgesAdjacentTo(id int) (adj Adjacency, ok bool) {
	if !g.inRange(id) {
		return nil, false
	}
	adj = maps.Clone(g.adjacency[id])
	if adj == nil {
		adj = Adjacency{}
	}

	return adj, true
}

// EdgesAdjacentToNode is EdgesAdjacentTo guarded by node equality: ok is false
// unless the node stored at n.ID is equal to n. This rejects handles whose
// identity was renumbered by a removal.
func (g *Graph[T]) EdgesAdjacentToNode(n Node[T]) (adj Adjacency, ok bool) {
	if !g.holds(n) {
		return nil, false
	}

	return g.EdgesAdjacentTo(n.ID)
}

// EdgesAdjacentToNodesWith returns the adjacency entries of every node whose
// value equals value, keyed by identity. An absent value yields an empty map.
//
// Complexity: O(k + Σ d_i) over the k matching nodes.
func (g *Graph[T]) EdgesAdjacentToNodesWith(value T) map[int]Adjacency {
	ids := g.index[value]
	out := make(map[int]Adjacency, len(ids))
	for _, id := range ids {
		out[id], _ = g.EdgesAdjacentTo(id)
	}

	return out
}

// Neighbors returns the identities adjacent to id in ascending order.
//
// Errors:
//   - ErrNodeNotFound if id is out of range.
func (g *Graph[T]) Neighbors(id int) ([]int, error) {
	if !g.inRange(id) {
		return nil, fmt.Errorf("neighbors of %d (node count %d): %w", id, len(g.nodes), ErrNodeNotFound)
	}

	return g.adjacency[id].Neighbors(), nil
}

// HasEdge reports whether an edge leads from i to j (in either direction for
// undirected graphs).
func (g *Graph[T]) HasEdge(i, j int) bool {
	if !g.inRange(i) || !g.inRange(j) {
		return false
	}
	_, ok := g.adjacency[i][j]
	return ok
}
