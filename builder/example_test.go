package builder_test

import (
	"fmt"

	"github.com/katalvlaran/fgraph/builder"
	"github.com/katalvlaran/fgraph/core"
)

// ExampleBuildGraph composes two constructors into one graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSymbNumb("v")},
		builder.Path(3),
		builder.Star(3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Values())
	fmt.Println(g.NodeCount(), g.EdgeCount())

	// Output:
	// [v0 v1 v2 Center v0 v1]
	// 6 4
}
