// Package bfs flattens a core.Graph breadth-first.
//
// What
//
//   - FlatMap(g, source, opts...) explores nodes in non-decreasing distance from
//     source and returns a new core.Graph whose node sequence is the visitation
//     order. Consecutive nodes are connected, so the result is a chain:
//
//     A───B───C───D───…
//
//   - WithQuery(q) stops the traversal right after q is discovered; the last node
//     of the result is then q.
//   - BFS(g, source) is the deprecated variant that chains the reachable set by
//     ascending identity instead of discovery order.
//
// Determinism
//
//	The queue is FIFO and each adjacency entry is scanned in ascending neighbor
//	identity, so the result is reproducible for a given snapshot.
//
// Directed graphs
//
//	Only outgoing edges are followed. The result graph has the same
//	directedness as the input, so a directed input yields a directed chain.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Steps:  O(V + E)
//   - Result: O(R·(R+U)) for R visited nodes over U distinct values; each
//     append copies the result snapshot, content index included.
//   - Memory: O(V) for queue and visited set, plus the result snapshots.
//
// Usage
//
//	res, err := bfs.FlatMap(g, src)
//	res, err := bfs.FlatMap(g, src,
//	    bfs.WithQuery(target),
//	    bfs.WithOnVisit(func(n core.Node[string], depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrSourceNotFound  if source is not a member of g (also core.ErrNodeNotFound).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
