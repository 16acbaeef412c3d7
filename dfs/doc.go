// Package dfs implements depth-first flattening of a core.Graph.
//
// Key features:
//   - FlatMap(g, source, opts...): visit order materialized as a chain graph
//   - WithQuery: stop right after the query node is visited
//   - Hooks: OnVisit (pre-order) with error aborts
//   - FilterNeighbor, with the skip count logged at Debug when the stack empties
//
// Order:
//
//	The stack receives each node's unvisited neighbors in descending identity,
//	so the lowest-identity neighbor is explored first. For nodes added in the
//	order A, B, C, E, D, F, G with edges A-B, A-C, A-E, B-D, B-F, F-E, C-G:
//
//	FlatMap(g, A) visits A, B, D, F, E, C, G.
//
// Complexity:
//
//   - Steps:  O(V + E); each neighbor is pushed at most once per visited node.
//   - Result: O(R·(R+U)) for R visited nodes over U distinct values; each
//     append copies the result snapshot, content index included.
//   - Memory: O(V + E) for the stack in the worst case, O(V) for the visited set.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrSourceNotFound         if source is not a member of g.
//   - any error returned by OnVisit.
package dfs
