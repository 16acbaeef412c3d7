// Package dfs defines types and options for depth-first traversal,
// including query short-circuit, pre-order hooks and neighbor filtering.
package dfs

import (
	"errors"

	"github.com/katalvlaran/fgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to FlatMap.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrSourceNotFound indicates that the source node is not a member of the
	// graph. Errors carrying it also match core.ErrNodeNotFound.
	ErrSourceNotFound = errors.New("dfs: source node not found")
)

// Option configures optional behavior of DFS traversal.
// Use with FlatMap(g, source, opts...).
type Option[T comparable] func(*DFSOptions[T])

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions[T comparable] struct {
	// Query, when HasQuery is set, stops traversal right after a node equal to
	// it is visited.
	Query    core.Node[T]
	HasQuery bool

	// OnVisit is invoked when a node is visited (pre-order), with
	// the depth of the stack frame that reached it.
	// Returning an error aborts traversal with that error.
	OnVisit func(n core.Node[T], depth int) error

	// FilterNeighbor is called for each neighbor before it is pushed.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr, neighbor core.Node[T]) bool
}

// DefaultOptions returns DFSOptions with no query, a no-op OnVisit and no filtering.
func DefaultOptions[T comparable]() DFSOptions[T] {
	return DFSOptions[T]{
		OnVisit:        func(core.Node[T], int) error { return nil },
		FilterNeighbor: func(_, _ core.Node[T]) bool { return true },
	}
}

// WithQuery returns an Option that stops traversal once q is visited.
func WithQuery[T comparable](q core.Node[T]) Option[T] {
	return func(o *DFSOptions[T]) {
		o.Query = q
		o.HasQuery = true
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// A nil fn keeps the current hook.
func WithOnVisit[T comparable](fn func(n core.Node[T], depth int) error) Option[T] {
	return func(o *DFSOptions[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(curr, nbr) == false, that neighbor is not pushed. A nil fn keeps the
// current filter.
func WithFilterNeighbor[T comparable](fn func(curr, neighbor core.Node[T]) bool) Option[T] {
	return func(o *DFSOptions[T]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
