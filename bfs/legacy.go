package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/fgraph/core"
)

// BFS collects every node reachable from source and chains them by ascending
// identity in g, not by discovery order.
//
// Deprecated: the chain does not reflect visitation order. Use FlatMap.
func BFS[T comparable](g *core.Graph[T], source core.Node[T]) (*core.Graph[T], error) {
	w, err := newWalker(g, source, nil)
	if err != nil {
		return nil, err
	}

	reached := []int{source.ID}
	w.visited[source.ID] = true
	for queue := []int{source.ID}; len(queue) > 0; {
		id := queue[0]
		queue = queue[1:]
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("bfs: %w", err)
		}
		for _, nid := range nbrs {
			if !w.visited[nid] {
				w.visited[nid] = true
				reached = append(reached, nid)
				queue = append(queue, nid)
			}
		}
	}
	slices.Sort(reached)

	res := w.res
	for _, id := range reached {
		n, _ := g.Node(id)
		if res, err = appendChain(res, n); err != nil {
			return nil, err
		}
	}

	return res, nil
}
