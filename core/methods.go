// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Snapshot-producing mutators: Add, Upsert, Remove/RemoveAt, Connect/ConnectAt.
// Policy:
//   - Every mutator returns a new *Graph[T]; the receiver is never written.
//   - On failure the receiver is returned unchanged (or nil for Remove) with a wrapped sentinel.
// Sharing:
//   - Node slices and the outer adjacency slice are always reallocated.
//   - Inner adjacency maps and index slices are shared until touched.

package core

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
)

// Add returns a snapshot with a new node holding value appended at identity
// NodeCount(). It never fails.
//
// Complexity: O(V) for the copied node and adjacency slices, O(U) for the
// copied index where U is the number of distinct values.
func (g *Graph[T]) Add(value T) *Graph[T] {
	return g.insert(NewNode(value))
}

// Upsert returns a snapshot with n appended at identity NodeCount(). The node's
// creation stamp and value are preserved; its ID is reassigned.
//
// Errors:
//   - ErrDuplicateNode if a node equal to n (same stamp and value) is already
//     present. This is a warning: the unchanged receiver is returned with it.
//
// Complexity: O(k) duplicate check over the k identities holding n.Value, plus Add's cost.
func (g *Graph[T]) Upsert(n Node[T]) (*Graph[T], error) {
	if id, ok := g.find(n); ok {
		g.log().Debug("upsert ignored: node already present",
			zap.Int("id", id), zap.Any("value", n.Value))
		return g, fmt.Errorf("upsert %v: already at id %d: %w", n.Value, id, ErrDuplicateNode)
	}

	return g.insert(n), nil
}

// Remove returns a snapshot without node n. Identities stay dense: every
// survivor with an identity greater than n.ID moves down by one and every
// surviving edge is re-pointed accordingly. Edges incident to n are dropped.
//
// Errors:
//   - ErrNodeNotFound if n.ID is out of range, or if the node stored at n.ID is
//     not equal to n (a stale handle from an earlier snapshot).
//
// Complexity: O(V + E).
func (g *Graph[T]) Remove(n Node[T]) (*Graph[T], error) {
	if !g.inRange(n.ID) {
		return nil, fmt.Errorf("remove id %d (node count %d): %w", n.ID, len(g.nodes), ErrNodeNotFound)
	}
	if !g.nodes[n.ID].Equal(n) {
		g.log().Debug("remove rejected: stale node handle", zap.Int("id", n.ID), zap.Any("value", n.Value))
		return nil, fmt.Errorf("remove id %d: stale handle for %v: %w", n.ID, n.Value, ErrNodeNotFound)
	}

	return g.RemoveAt(n.ID)
}

// RemoveAt is Remove keyed by identity alone.
//
// Errors:
//   - ErrNodeNotFound if id is out of range.
//
// Complexity: O(V + E).
func (g *Graph[T]) RemoveAt(id int) (*Graph[T], error) {
	if !g.inRange(id) {
		return nil, fmt.Errorf("remove id %d (node count %d): %w", id, len(g.nodes), ErrNodeNotFound)
	}

	shift := func(i int) int {
		if i > id {
			return i - 1
		}
		return i
	}

	// Survivors keep their relative order, so replaying them yields exactly
	// the shifted identities.
	out := New[T](g.options()...)
	out.nodes = make([]Node[T], 0, len(g.nodes)-1)
	out.adjacency = make([]Adjacency, 0, len(g.nodes)-1)
	for i, n := range g.nodes {
		if i == id {
			continue
		}
		nid := shift(i)
		out.nodes = append(out.nodes, n.withID(nid))
		out.index[n.Value] = append(out.index[n.Value], nid)

		adj := make(Adjacency, len(g.adjacency[i]))
		for nbr, e := range g.adjacency[i] {
			if e.Has(id) {
				continue
			}
			adj[shift(nbr)] = e.repoint(shift)
		}
		out.adjacency = append(out.adjacency, adj)
	}

	g.log().Debug("node removed",
		zap.Int("id", id), zap.Any("value", g.nodes[id].Value), zap.Int("nodes", len(out.nodes)))

	return out, nil
}

// Connect returns a snapshot with an edge between a and b. Undirected graphs
// record the edge in both adjacency entries; directed graphs only in a's.
// Connecting an already connected pair is idempotent: the receiver is returned.
//
// Errors:
//   - ErrNodeNotFound if a or b is not a member (identity out of range or the
//     stored node is not equal to the handle); the receiver is returned.
//   - ErrSelfLoop if a and b are the same node.
//
// Complexity: O(V) for the copied outer adjacency slice plus O(deg) per touched entry.
func (g *Graph[T]) Connect(a, b Node[T]) (*Graph[T], error) {
	for _, n := range [2]Node[T]{a, b} {
		if !g.holds(n) {
			g.log().Debug("connect rejected: node not in graph", zap.Int("id", n.ID), zap.Any("value", n.Value))
			return g, fmt.Errorf("connect %v-%v: %v not in graph: %w", a.Value, b.Value, n, ErrNodeNotFound)
		}
	}

	return g.ConnectAt(a.ID, b.ID)
}

// ConnectAt is Connect keyed by identities.
//
// Errors:
//   - ErrNodeNotFound if either identity is out of range.
//   - ErrSelfLoop if i == j.
func (g *Graph[T]) ConnectAt(i, j int) (*Graph[T], error) {
	if !g.inRange(i) || !g.inRange(j) {
		return g, fmt.Errorf("connect %d-%d (node count %d): %w", i, j, len(g.nodes), ErrNodeNotFound)
	}
	if _, ok := g.adjacency[i][j]; ok {
		g.log().Debug("connect is a no-op: edge exists", zap.Int("from", i), zap.Int("to", j))
		return g, nil
	}
	e, err := NewEdge(i, j, g.directed)
	if err != nil {
		return g, fmt.Errorf("connect: %w", err)
	}

	adjacency := slices.Clone(g.adjacency)
	adjacency[i] = withEdge(g.adjacency[i], j, e)
	if !g.directed {
		adjacency[j] = withEdge(g.adjacency[j], i, e)
	}

	return &Graph[T]{
		nodes:     g.nodes,
		adjacency: adjacency,
		index:     g.index,
		directed:  g.directed,
		logger:    g.logger,
	}, nil
}

// insert appends n at the next identity.
func (g *Graph[T]) insert(n Node[T]) *Graph[T] {
	id := len(g.nodes)

	nodes := make([]Node[T], id+1)
	copy(nodes, g.nodes)
	nodes[id] = n.withID(id)

	adjacency := make([]Adjacency, id+1)
	copy(adjacency, g.adjacency)
	adjacency[id] = Adjacency{}

	index := maps.Clone(g.index)
	if index == nil {
		index = make(map[T][]int)
	}
	// Clip forces append to reallocate, leaving the shared slice untouched.
	index[n.Value] = append(slices.Clip(g.index[n.Value]), id)

	return &Graph[T]{
		nodes:     nodes,
		adjacency: adjacency,
		index:     index,
		directed:  g.directed,
		logger:    g.logger,
	}
}

// withEdge returns a copy of adj with nbr mapped to e.
func withEdge(adj Adjacency, nbr int, e Edge) Adjacency {
	out := make(Adjacency, len(adj)+1)
	maps.Copy(out, adj)
	out[nbr] = e
	return out
}

// find returns the identity of the node equal to n, if any.
func (g *Graph[T]) find(n Node[T]) (int, bool) {
	for _, id := range g.index[n.Value] {
		if g.nodes[id].Equal(n) {
			return id, true
		}
	}

	return 0, false
}

// holds reports whether n is a member of g at its own identity.
func (g *Graph[T]) holds(n Node[T]) bool {
	return g.inRange(n.ID) && g.nodes[n.ID].Equal(n)
}

func (g *Graph[T]) inRange(id int) bool {
	return id >= 0 && id < len(g.nodes)
}

// log returns the attached logger, or a no-op logger for a zero Graph.
func (g *Graph[T]) log() *zap.Logger {
	if g.logger == nil {
		return zap.NewNop()
	}
	return g.logger
}
