package dfs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/fgraph/core"
)

// frame is a pending stack entry: a node identity and the depth it was pushed at.
type frame struct {
	id    int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[T comparable] struct {
	graph *core.Graph[T] // traversed graph
	opts  DFSOptions[T]  // traversal options
	stack []frame
	res   *core.Graph[T] // result chain; membership doubles as the visited set
	seen  map[int]bool   // identities of g already in res
	log   *zap.Logger

	skipped int // neighbors refused by FilterNeighbor, reported in the exhaustion log
}

// FlatMap performs depth-first search on g from source and returns the visited
// nodes as a new graph: node i of the result is the i-th visited node, and each
// node is connected to the one visited just before it.
//
// The traversal uses an explicit stack. Neighbors are pushed in descending
// identity so the lowest identity is explored first. With WithQuery traversal
// stops right after the query node is visited. The result shares g's
// directedness and logger, and keeps every node's creation stamp.
//
// Returns ErrGraphNil, ErrSourceNotFound, or a wrapped OnVisit error; on a hook
// error the partial result is returned alongside it.
//
// Complexity: O(V + E) traversal steps plus O(R·(R+U)) to build the R-node
// result, since every append copies the result snapshot including its content
// index over U distinct values.
func FlatMap[T comparable](g *core.Graph[T], source core.Node[T], opts ...Option[T]) (*core.Graph[T], error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, ok := g.EdgesAdjacentToNode(source); !ok {
		return nil, fmt.Errorf("%w: %v: %w", ErrSourceNotFound, source, core.ErrNodeNotFound)
	}

	// 2. Apply options
	dopts := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&dopts)
	}

	w := &dfsWalker[T]{
		graph: g,
		opts:  dopts,
		stack: []frame{{id: source.ID}},
		res:   core.New[T](g.Options()...),
		seen:  make(map[int]bool, g.NodeCount()),
		log:   g.Logger(),
	}

	// 3. Traverse
	err := w.run()

	return w.res, err
}

// run pops frames until the stack is empty, the query is visited, or a hook fails.
func (w *dfsWalker[T]) run() error {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.seen[top.id] {
			continue
		}

		found, err := w.visit(top)
		if err != nil || found {
			return err
		}
		w.push(top)
	}
	w.log.Debug("dfs: stack exhausted",
		zap.Int("visited", w.res.NodeCount()), zap.Int("skipped", w.skipped))

	return nil
}

// visit appends the node to the result chain, runs the hook and reports
// whether it is the query.
func (w *dfsWalker[T]) visit(f frame) (bool, error) {
	n, _ := w.graph.Node(f.id)
	w.seen[f.id] = true

	res, err := w.res.Upsert(n)
	if err != nil {
		return false, fmt.Errorf("dfs: %w", err)
	}
	if cnt := res.NodeCount(); cnt > 1 {
		if res, err = res.ConnectAt(cnt-2, cnt-1); err != nil {
			return false, fmt.Errorf("dfs: %w", err)
		}
	}
	w.res = res

	if err = w.opts.OnVisit(n, f.depth); err != nil {
		return false, fmt.Errorf("dfs: OnVisit hook for %v: %w", n, err)
	}
	if w.opts.HasQuery && n.Equal(w.opts.Query) {
		w.log.Debug("dfs: query found", zap.Int("id", f.id), zap.Int("depth", f.depth))
		return true, nil
	}

	return false, nil
}

// push stacks the unvisited neighbors of f in descending identity.
func (w *dfsWalker[T]) push(f frame) {
	curr, _ := w.graph.Node(f.id)
	adj, _ := w.graph.EdgesAdjacentTo(f.id)
	nbrs := adj.Neighbors()
	for i := len(nbrs) - 1; i >= 0; i-- {
		nid := nbrs[i]
		if w.seen[nid] {
			continue
		}
		if nbr, _ := w.graph.Node(nid); !w.opts.FilterNeighbor(curr, nbr) {
			w.skipped++
			continue
		}
		w.stack = append(w.stack, frame{id: nid, depth: f.depth + 1})
	}
}
