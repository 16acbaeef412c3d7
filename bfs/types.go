// Package bfs provides tunable options and error definitions
// for breadth-first traversal of a core.Graph.
package bfs

import (
	"errors"

	"github.com/katalvlaran/fgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source node is not a member of the
	// graph. Errors carrying it also match core.ErrNodeNotFound.
	ErrSourceNotFound = errors.New("bfs: source node not found")
)

// Option configures BFS behavior via functional arguments.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize a traversal.
type Options[T comparable] struct {
	// Query, when HasQuery is set, stops the traversal as soon as a node equal
	// to it is discovered.
	Query    core.Node[T]
	HasQuery bool

	// OnVisit is called once per node, right after it is appended to the result.
	// depth is the node's distance in edges from the source. Returning an error
	// aborts the traversal.
	OnVisit func(n core.Node[T], depth int) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each unvisited neighbor of curr.
	FilterNeighbor func(curr, neighbor core.Node[T]) bool
}

// DefaultOptions returns Options with no query, a no-op OnVisit and no filtering.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		OnVisit:        func(core.Node[T], int) error { return nil },
		FilterNeighbor: func(_, _ core.Node[T]) bool { return true },
	}
}

// WithQuery stops the traversal when a node equal to q is discovered.
func WithQuery[T comparable](q core.Node[T]) Option[T] {
	return func(o *Options[T]) {
		o.Query = q
		o.HasQuery = true
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[T comparable](fn func(n core.Node[T], depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[T comparable](fn func(curr, neighbor core.Node[T]) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
