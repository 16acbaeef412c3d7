package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgraph/builder"
	"github.com/katalvlaran/fgraph/core"
)

// degrees returns the neighbor count of every identity.
func degrees(t *testing.T, g *core.Graph[string]) []int {
	t.Helper()
	out := make([]int, g.NodeCount())
	for i := range out {
		nbrs, err := g.Neighbors(i)
		require.NoError(t, err)
		out[i] = len(nbrs)
	}

	return out
}

// TestBuilders_Functional checks node and edge counts plus one structural probe per topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   builder.Constructor
		wantV  int
		wantE  int
		sample func(t *testing.T, g *core.Graph[string])
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sample: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []int{1, 2, 2, 1}, degrees(t, g))
				assert.Equal(t, []string{"0", "1", "2", "3"}, g.Values())
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sample: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []int{2, 2, 2, 2, 2}, degrees(t, g))
				assert.True(t, g.HasEdge(4, 0), "closing edge")
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			sample: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, builder.CenterValue, g.Values()[0])
				assert.Equal(t, []int{3, 1, 1, 1}, degrees(t, g))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sample: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []int{4, 3, 3, 3, 3}, degrees(t, g))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sample: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []int{3, 3, 3, 3}, degrees(t, g))
			},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sample: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []string{"L0", "L1", "R0", "R1", "R2"}, g.Values())
				assert.False(t, g.HasEdge(0, 1), "no edge inside a side")
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sample: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []int{4}, g.NodesWith("1,1"))
				nbrs, _ := g.Neighbors(4)
				assert.Equal(t, []int{1, 3, 5}, nbrs)
			},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sample != nil {
				tc.sample(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,1)", builder.CompleteBipartite(0, 1), nil, builder.ErrTooFewVertices},
		{"Grid(0,2)", builder.Grid(0, 2), nil, builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildGraph_ComposesDisjointBlocks(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "A", "B", "C"}, g.Values())
	assert.Equal(t, []int{0, 3}, g.NodesWith("A"))
	assert.Equal(t, 2+3, g.EdgeCount())
	assert.False(t, g.HasEdge(2, 3), "blocks are not linked to each other")
	assert.True(t, g.HasEdge(5, 3))
}

func TestBuildGraph_Directed(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)}, nil,
		builder.Cycle(3), builder.Complete(3))
	require.NoError(t, err)

	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0), "cycle runs one way")
	assert.True(t, g.HasEdge(3, 4))
	assert.True(t, g.HasEdge(4, 3), "complete links both ways")
	assert.Equal(t, 3+6, g.EdgeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph[string] {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.NodeCount(), b.NodeCount())
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
	for i := 0; i < a.NodeCount(); i++ {
		na, _ := a.Neighbors(i)
		nb, _ := b.Neighbors(i)
		assert.Equal(t, na, nb, "neighbors of %d", i)
	}
}

func TestPartitionPrefix_EmptyFallsBack(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithPartitionPrefix("", "right")},
		builder.CompleteBipartite(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"L0", "right0", "right1"}, g.Values())
}
