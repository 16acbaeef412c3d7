// Package fgraph is a generic, persistent graph library.
//
// Every mutation returns a new snapshot and leaves the old one intact, so a
// graph value can be shared freely and read from any goroutine. Nodes carry an
// arbitrary comparable payload and a dense positional identity; removing a node
// renumbers everything after it.
//
// Packages:
//
//	core/      Graph[T], Node[T], Edge: add, upsert, remove, connect and adjacency queries
//	bfs/       breadth-first flattening into a chain graph (FlatMap, deprecated BFS)
//	dfs/       depth-first flattening into a chain graph
//	builder/   deterministic topology fixtures (path, cycle, star, grid, ...)
//	manifest/  YAML / JSON / TOML graph documents
//	render/    Graphviz DOT and SVG output
//
// The fgraph command (cmd/fgraph) wires these together on the command line.
//
// Quick example:
//
//	g := core.New[string]().Add("A").Add("B").Add("C")
//	g, _ = g.ConnectAt(0, 1)
//	g, _ = g.ConnectAt(0, 2)
//	a, _ := g.Node(0)
//	chain, _ := bfs.FlatMap(g, a) // A - B - C
package fgraph
