// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Direction, Graph[T] layout and construction options.
// Policy:
//   - A *Graph[T] is a snapshot: no method ever mutates the receiver.
//   - Identity is positional: nodes[i].ID == i for every snapshot.

package core

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an identity that is out of
	// range, or a node handle that no longer matches the node stored at its identity.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode is the recoverable warning returned by Upsert when an equal
	// node is already present. The returned graph is the unchanged receiver.
	ErrDuplicateNode = errors.New("core: node already present")

	// ErrInvariantViolation signals an internal contract breach, e.g. asking an
	// edge for the endpoint opposite to a node it does not touch.
	ErrInvariantViolation = errors.New("core: invariant violation")

	// ErrSelfLoop indicates an edge was requested between a node and itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Direction tags the role of an edge endpoint.
type Direction int

const (
	// DirectionNone marks both endpoints of an undirected edge.
	DirectionNone Direction = iota
	// DirectionTo marks the target endpoint of a directed edge.
	DirectionTo
	// DirectionFrom marks the source endpoint of a directed edge.
	DirectionFrom
	// DirectionLeft and DirectionRight are handedness tags kept for rendering
	// compatibility; edges built by this package never carry them.
	DirectionLeft
	DirectionRight
)

// String returns the lower-case tag name.
func (d Direction) String() string {
	switch d {
	case DirectionTo:
		return "to"
	case DirectionFrom:
		return "from"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

// graphConfig is the non-generic part of a Graph fixed at construction time.
type graphConfig struct {
	directed bool
	logger   *zap.Logger
}

// WithDirected sets whether edges created by Connect are directed.
// Directedness is fixed for the lifetime of the graph and all derived snapshots.
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) { cfg.directed = directed }
}

// WithLogger attaches a logger used for Debug diagnostics of recoverable
// conditions. A nil logger is ignored. Derived snapshots inherit it.
func WithLogger(logger *zap.Logger) GraphOption {
	return func(cfg *graphConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Adjacency is the adjacency entry of one node: neighbor identity → edge.
// Values returned by Graph queries are private copies; mutating them does not
// affect any snapshot.
type Adjacency map[int]Edge

// Graph is an immutable graph snapshot over payloads of type T.
//
// nodes[i] is the node with identity i; adjacency[i] holds the edges incident
// to it (outgoing only, for directed graphs); index maps each payload value to
// every identity currently holding it. Mutating methods return a new *Graph[T]
// that shares untouched adjacency maps and index slices with the receiver.
type Graph[T comparable] struct {
	nodes     []Node[T]
	adjacency []Adjacency
	index     map[T][]int
	directed  bool
	logger    *zap.Logger
}

// New creates an empty graph. By default the graph is undirected and logs nothing.
// Complexity: O(len(opts)).
func New[T comparable](opts ...GraphOption) *Graph[T] {
	cfg := graphConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		nodes:     nil,
		adjacency: nil,
		index:     make(map[T][]int),
		directed:  cfg.directed,
		logger:    cfg.logger,
	}
}

// Directed reports whether edges of this graph are directed.
func (g *Graph[T]) Directed() bool {
	return g.directed
}

// Logger returns the logger attached to this graph (never nil).
func (g *Graph[T]) Logger() *zap.Logger {
	return g.log()
}

// options reproduces the construction options of g, so that graphs derived
// from it (rebuilt snapshots, traversal results) share its configuration.
func (g *Graph[T]) options() []GraphOption {
	return []GraphOption{WithDirected(g.directed), WithLogger(g.log())}
}

// Options returns the construction options of g. Passing them to New yields an
// empty graph with the same directedness and logger.
func (g *Graph[T]) Options() []GraphOption {
	return g.options()
}
