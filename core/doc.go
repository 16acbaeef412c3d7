// Package core provides a generic, persistent (value-semantic) graph.
//
// A *Graph[T] is an immutable snapshot. Add, Upsert, Remove and Connect never
// touch the receiver: each returns a new snapshot, so earlier snapshots stay
// valid and can be read from any number of goroutines without locking.
//
// The Graph G = (V,E) keeps three structures in lock-step:
//
//   - nodes:     the node sequence; a node's identity is its position, so
//     nodes[i].ID == i holds for every snapshot.
//   - adjacency: one Adjacency entry per node, neighbor identity → Edge.
//     Undirected edges are recorded under both endpoints, directed edges
//     only under their source.
//   - index:     payload value → every identity holding that value.
//
// Identity and removal:
//
//	Identities are dense and zero-based. Remove deletes one position, shifts every
//	later node down by one, re-points the surviving edges and drops the edges that
//	touched the removed node.
//
//	  before: [X:0] [Y:1] [Z:2]   edge X-Z
//	  Remove(X)
//	  after:  [Y:0] [Z:1]         no edges
//
// Node handles:
//
//	Node equality is creation stamp + value, not identity. Methods taking a Node
//	(Connect, Remove, EdgesAdjacentToNode) require the node stored at n.ID to be
//	equal to n, so a handle taken before a renumbering is rejected rather than
//	silently aliasing another node. Re-resolve values through NodesWith.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(bool)       edges are directed (from → to) or undirected.
//	– WithLogger(*zap.Logger)  Debug diagnostics for no-ops and rejected handles.
//
// Errors:
//
//	ErrNodeNotFound       identity out of range or stale node handle.
//	ErrDuplicateNode      Upsert of a node already present (recoverable; graph unchanged).
//	ErrSelfLoop           Connect(a, a).
//	ErrInvariantViolation Edge.Other with an identity that is not an endpoint.
//
// Complexity:
//
//	Add/Upsert O(V), Connect O(V), Remove O(V+E); queries O(d) or O(d log d).
//	Unchanged adjacency maps and index slices are shared between snapshots.
package core
