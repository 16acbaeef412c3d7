package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/fgraph/core"
	"github.com/katalvlaran/fgraph/dfs"
)

// ExampleFlatMap flattens a graph depth-first, lowest identity first.
func ExampleFlatMap() {
	g := core.New[string]()
	for _, v := range []string{"A", "B", "C", "E", "D", "F", "G"} {
		g = g.Add(v)
	}
	// A–B, A–C, A–E, B–D, B–F, F–E, C–G
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}, {1, 5}, {5, 3}, {2, 6}} {
		g, _ = g.ConnectAt(e[0], e[1])
	}

	a, _ := g.Node(0)
	res, _ := dfs.FlatMap(g, a)
	fmt.Println(res.Values())

	e, _ := g.Node(3)
	res, _ = dfs.FlatMap(g, a, dfs.WithQuery(e))
	fmt.Println(res.Values())

	// Output:
	// [A B D F E C G]
	// [A B D F E]
}

// ExampleWithFilterNeighbor prunes a branch during traversal.
func ExampleWithFilterNeighbor() {
	g := core.New[string](core.WithDirected(true)).Add("src").Add("keep").Add("drop").Add("leaf")
	g, _ = g.ConnectAt(0, 1)
	g, _ = g.ConnectAt(0, 2)
	g, _ = g.ConnectAt(2, 3)

	src, _ := g.Node(0)
	res, _ := dfs.FlatMap(g, src, dfs.WithFilterNeighbor(func(_, nbr core.Node[string]) bool {
		return nbr.Value != "drop"
	}))
	fmt.Println(res.Values())

	// Output:
	// [src keep]
}
