package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/fgraph/core"
	"github.com/katalvlaran/fgraph/dfs"
)

// buildGraph folds Add over values and ConnectAt over edges.
func buildGraph(t testing.TB, values []string, edges [][2]int, opts ...core.GraphOption) *core.Graph[string] {
	t.Helper()
	g := core.New[string](opts...)
	for _, v := range values {
		g = g.Add(v)
	}
	var err error
	for _, e := range edges {
		g, err = g.ConnectAt(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// scenarioGraph: nodes A B C E D F G (ids 0..6) with
// A–B, A–C, A–E, B–D, B–F, F–E, C–G.
func scenarioGraph(t testing.TB, opts ...core.GraphOption) *core.Graph[string] {
	return buildGraph(t,
		[]string{"A", "B", "C", "E", "D", "F", "G"},
		[][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}, {1, 5}, {5, 3}, {2, 6}},
		opts...)
}

// assertChain verifies that res is exactly the path 0-1-…-(n-1).
func assertChain(t *testing.T, res *core.Graph[string]) {
	t.Helper()
	n := res.NodeCount()
	assert.Equal(t, max(n-1, 0), res.EdgeCount())
	for i := 1; i < n; i++ {
		assert.True(t, res.HasEdge(i-1, i), "chain edge %d-%d", i-1, i)
	}
}

func TestFlatMap_NilGraph(t *testing.T) {
	res, err := dfs.FlatMap[string](nil, core.NewNode("A"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestFlatMap_SourceNotFound(t *testing.T) {
	g := scenarioGraph(t)
	res, err := dfs.FlatMap(g, core.NewNode("A"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrSourceNotFound)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestFlatMap_SingleNode(t *testing.T) {
	g := core.New[string]().Add("X")
	x, _ := g.Node(0)

	res, err := dfs.FlatMap(g, x)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Values())
	assert.Equal(t, 0, res.EdgeCount())
}

func TestFlatMap_Scenario(t *testing.T) {
	g := scenarioGraph(t)
	a, _ := g.Node(0)

	res, err := dfs.FlatMap(g, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "F", "E", "C", "G"}, res.Values())
	assertChain(t, res)
	for _, n := range res.Nodes() {
		assert.True(t, g.Contains(n), "stamp of %v preserved", n)
	}
}

func TestFlatMap_Query(t *testing.T) {
	g := scenarioGraph(t)
	a, _ := g.Node(0)
	e, _ := g.Node(3)

	res, err := dfs.FlatMap(g, a, dfs.WithQuery(e))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "F", "E"}, res.Values())
	assertChain(t, res)
}

func TestFlatMap_QueryIsSource(t *testing.T) {
	g := scenarioGraph(t)
	a, _ := g.Node(0)

	res, err := dfs.FlatMap(g, a, dfs.WithQuery(a))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Values())
}

func TestFlatMap_DirectedChain(t *testing.T) {
	// A→B→C, plus D→A which must not be followed backwards
	g := buildGraph(t, []string{"A", "B", "C", "D"}, [][2]int{{0, 1}, {1, 2}, {3, 0}}, core.WithDirected(true))
	a, _ := g.Node(0)

	res, err := dfs.FlatMap(g, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Values())
	assert.True(t, res.Directed())
	assert.True(t, res.HasEdge(1, 2))
	assert.False(t, res.HasEdge(2, 1))
}

func TestFlatMap_Disconnected(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][2]int{{0, 1}})
	a, _ := g.Node(0)

	res, err := dfs.FlatMap(g, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Values(), "only reachable nodes")
}

func TestFlatMap_OnVisitDepth(t *testing.T) {
	g := scenarioGraph(t)
	a, _ := g.Node(0)

	depth := map[string]int{}
	_, err := dfs.FlatMap(g, a, dfs.WithOnVisit(func(n core.Node[string], d int) error {
		depth[n.Value] = d
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "F": 2, "E": 3, "C": 1, "G": 2}, depth)
}

func TestFlatMap_OnVisitError(t *testing.T) {
	g := scenarioGraph(t)
	a, _ := g.Node(0)
	halt := errors.New("halt")

	res, err := dfs.FlatMap(g, a, dfs.WithOnVisit(func(n core.Node[string], _ int) error {
		if n.Value == "D" {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)
	assert.ErrorContains(t, err, "OnVisit hook")
	require.NotNil(t, res)
	assert.Equal(t, []string{"A", "B", "D"}, res.Values(), "partial chain up to the failing node")
}

func TestFlatMap_FilterNeighbor(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	g := scenarioGraph(t, core.WithLogger(zap.New(obs)))
	a, _ := g.Node(0)

	res, err := dfs.FlatMap(g, a, dfs.WithFilterNeighbor(func(_, nbr core.Node[string]) bool {
		return nbr.Value != "F"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "C", "G"}, res.Values())

	done := logs.FilterMessage("dfs: stack exhausted").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(2), done[0].ContextMap()["skipped"], "F refused from B and from E")
	assert.Equal(t, int64(6), done[0].ContextMap()["visited"])
}

func TestFlatMap_InputUntouched(t *testing.T) {
	g := scenarioGraph(t)
	before := g.Describe()
	a, _ := g.Node(0)

	_, err := dfs.FlatMap(g, a)
	require.NoError(t, err)
	assert.Equal(t, before, g.Describe())
}

// TestFlatMap_NilHooksIgnored: nil callbacks leave the defaults in place.
func TestFlatMap_NilHooksIgnored(t *testing.T) {
	g := scenarioGraph(t)
	src, _ := g.Node(0)

	var visited []string
	res, err := dfs.FlatMap(g, src,
		dfs.WithOnVisit(func(n core.Node[string], _ int) error {
			visited = append(visited, n.Value)
			return nil
		}),
		dfs.WithOnVisit[string](nil),
		dfs.WithFilterNeighbor[string](nil),
	)
	require.NoError(t, err)
	want := []string{"A", "B", "D", "F", "E", "C", "G"}
	assert.Equal(t, want, res.Values())
	assert.Equal(t, want, visited, "earlier hook survives a nil override")
}
