// SPDX-License-Identifier: MIT
//
// File: edge.go
// Role: Edge value type: two tagged endpoints plus a creation stamp.
// Determinism:
//   - Endpoints() always returns the endpoints in creation order (a, b).
//   - Other(id) resolves by key, never by container iteration order.

package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Endpoint is one end of an edge: a node identity and its direction tag.
type Endpoint struct {
	ID        int
	Direction Direction
}

// Edge links two node identities.
//
// A directed edge a→b tags a with DirectionFrom and b with DirectionTo. An
// undirected edge tags both ends DirectionNone. Edge identity is its creation
// stamp: two structurally identical edges created separately are distinct.
type Edge struct {
	endpoints [2]Endpoint

	// CreatedAt is the wall-clock creation instant.
	CreatedAt time.Time

	stamp uuid.UUID
}

// NewEdge builds an edge between identities a and b.
//
// Errors:
//   - ErrSelfLoop if a == b.
//
// Complexity: O(1).
func NewEdge(a, b int, directed bool) (Edge, error) {
	if a == b {
		return Edge{}, fmt.Errorf("edge %d-%d: %w", a, b, ErrSelfLoop)
	}
	first, second := DirectionNone, DirectionNone
	if directed {
		first, second = DirectionFrom, DirectionTo
	}

	return Edge{
		endpoints: [2]Endpoint{{ID: a, Direction: first}, {ID: b, Direction: second}},
		CreatedAt: time.Now(),
		stamp:     newStamp(),
	}, nil
}

// Endpoints returns both endpoints in creation order.
func (e Edge) Endpoints() (Endpoint, Endpoint) {
	return e.endpoints[0], e.endpoints[1]
}

// Directed reports whether the edge carries from/to tags.
func (e Edge) Directed() bool {
	return e.endpoints[0].Direction == DirectionFrom
}

// Source returns the first endpoint identity (the tail of a directed edge).
func (e Edge) Source() int {
	return e.endpoints[0].ID
}

// Target returns the second endpoint identity (the head of a directed edge).
func (e Edge) Target() int {
	return e.endpoints[1].ID
}

// Has reports whether id is one of the edge's endpoints.
func (e Edge) Has(id int) bool {
	return e.endpoints[0].ID == id || e.endpoints[1].ID == id
}

// Direction returns the tag of endpoint id; ok is false if id is not an endpoint.
func (e Edge) Direction(id int) (dir Direction, ok bool) {
	for _, ep := range e.endpoints {
		if ep.ID == id {
			return ep.Direction, true
		}
	}

	return DirectionNone, false
}

// Other returns the endpoint identity that is not id.
//
// Errors:
//   - ErrInvariantViolation if id is not an endpoint of e.
func (e Edge) Other(id int) (int, error) {
	switch id {
	case e.endpoints[0].ID:
		return e.endpoints[1].ID, nil
	case e.endpoints[1].ID:
		return e.endpoints[0].ID, nil
	default:
		return 0, fmt.Errorf("edge %d-%d has no endpoint %d: %w",
			e.endpoints[0].ID, e.endpoints[1].ID, id, ErrInvariantViolation)
	}
}

// Equal reports whether e and other are the same edge (same creation stamp).
func (e Edge) Equal(other Edge) bool {
	return e.stamp == other.stamp
}

// String renders one line per endpoint: "id: <id>, direction: <direction>".
func (e Edge) String() string {
	var sb strings.Builder
	for i, ep := range e.endpoints {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "id: %d, direction: %s", ep.ID, ep.Direction)
	}

	return sb.String()
}

// repoint returns a copy of e with every endpoint identity passed through fn.
// Direction tags and the creation stamp are preserved.
func (e Edge) repoint(fn func(int) int) Edge {
	e.endpoints[0].ID = fn(e.endpoints[0].ID)
	e.endpoints[1].ID = fn(e.endpoints[1].ID)
	return e
}
