package bfs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/fgraph/core"
)

// queueItem pairs a node identity in the traversed graph with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	graph   *core.Graph[T]
	opts    Options[T]
	queue   []queueItem
	visited map[int]bool
	res     *core.Graph[T]
	log     *zap.Logger
}

// FlatMap runs breadth-first search on g from source and returns the visited
// nodes as a new graph: node i of the result is the i-th discovered node, and
// each node is connected to the one discovered just before it.
//
// The queue is FIFO and neighbors are scanned in ascending identity, so the
// result is fully determined by g. With WithQuery the traversal stops right
// after the query node is appended; a source equal to the query yields a
// one-node graph. The result shares g's directedness and logger, and keeps
// every node's creation stamp.
//
// Returns ErrGraphNil, ErrSourceNotFound, or a wrapped OnVisit error; on a hook
// error the partial result is returned alongside it.
//
// Complexity: O(V + E) traversal steps. Building the result is quadratic: each
// of the R appended nodes copies the result's node and adjacency slices and its
// content index, so the chain costs O(R·(R+U)) overall, U being the number of
// distinct values.
func FlatMap[T comparable](g *core.Graph[T], source core.Node[T], opts ...Option[T]) (*core.Graph[T], error) {
	w, err := newWalker(g, source, opts)
	if err != nil {
		return nil, err
	}

	err = w.loop(source)

	return w.res, err
}

// newWalker validates input and applies options.
func newWalker[T comparable](g *core.Graph[T], source core.Node[T], opts []Option[T]) (*walker[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, ok := g.EdgesAdjacentToNode(source); !ok {
		return nil, fmt.Errorf("%w: %v: %w", ErrSourceNotFound, source, core.ErrNodeNotFound)
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return &walker[T]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, g.NodeCount()),
		visited: make(map[int]bool, g.NodeCount()),
		res:     core.New[T](g.Options()...),
		log:     g.Logger(),
	}, nil
}

// loop seeds the queue with source and processes it until empty, the query is
// found, or a hook fails.
func (w *walker[T]) loop(source core.Node[T]) error {
	found, err := w.discover(source.ID, 0)
	if err != nil || found {
		return err
	}
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		found, err = w.expand(item)
		if err != nil || found {
			return err
		}
	}
	w.log.Debug("bfs: queue exhausted", zap.Int("visited", w.res.NodeCount()))

	return nil
}

// expand discovers every unvisited neighbor of item in ascending identity.
func (w *walker[T]) expand(item queueItem) (bool, error) {
	curr, _ := w.graph.Node(item.id)
	adj, _ := w.graph.EdgesAdjacentTo(item.id)
	for _, nid := range adj.Neighbors() {
		if w.visited[nid] {
			continue
		}
		nbr, _ := w.graph.Node(nid)
		if !w.opts.FilterNeighbor(curr, nbr) {
			continue
		}
		found, err := w.discover(nid, item.depth+1)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

// discover marks id visited, enqueues it, appends it to the result chain and
// reports whether it is the query.
func (w *walker[T]) discover(id, depth int) (bool, error) {
	n, _ := w.graph.Node(id)
	w.visited[id] = true
	w.queue = append(w.queue, queueItem{id: id, depth: depth})

	res, err := appendChain(w.res, n)
	if err != nil {
		return false, err
	}
	w.res = res

	if err = w.opts.OnVisit(n, depth); err != nil {
		return false, fmt.Errorf("bfs: OnVisit error at %v: %w", n, err)
	}
	if w.opts.HasQuery && n.Equal(w.opts.Query) {
		w.log.Debug("bfs: query found", zap.Int("id", id), zap.Int("depth", depth))
		return true, nil
	}

	return false, nil
}

// appendChain upserts n into res and links it to the previous tail.
func appendChain[T comparable](res *core.Graph[T], n core.Node[T]) (*core.Graph[T], error) {
	res, err := res.Upsert(n)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	if cnt := res.NodeCount(); cnt > 1 {
		if res, err = res.ConnectAt(cnt-2, cnt-1); err != nil {
			return nil, fmt.Errorf("bfs: %w", err)
		}
	}

	return res, nil
}
