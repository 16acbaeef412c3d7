// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Node[T] value type, creation stamps and node equality.

package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Node is a payload value with a positional identity.
//
// ID is assigned by the graph that holds the node and is rewritten when
// removals shift positions. Equality (see Equal) ignores ID: two nodes are the
// same node only if they carry the same creation stamp and equal values.
type Node[T comparable] struct {
	// ID is the node's position in the holding graph's node sequence.
	ID int

	// Value is the payload.
	Value T

	// CreatedAt is the wall-clock creation instant.
	CreatedAt time.Time

	// stamp is a time-ordered UUIDv7 minted together with CreatedAt.
	// Unlike the wall clock it is unique per process, so it disambiguates nodes
	// created within the same clock tick.
	stamp uuid.UUID
}

// NewNode builds a node holding value with a fresh creation stamp.
// The identity is left at zero; graphs assign it on insertion.
func NewNode[T comparable](value T) Node[T] {
	return Node[T]{
		Value:     value,
		CreatedAt: time.Now(),
		stamp:     newStamp(),
	}
}

// Equal reports whether n and other are the same node: same creation stamp and
// equal value. Identities are not compared.
func (n Node[T]) Equal(other Node[T]) bool {
	return n.stamp == other.stamp && n.Value == other.Value
}

// String renders the node as "Id: <id>, Value: <value>".
func (n Node[T]) String() string {
	return fmt.Sprintf("Id: %d, Value: %v", n.ID, n.Value)
}

// withID returns a copy of n carrying identity id.
func (n Node[T]) withID(id int) Node[T] {
	n.ID = id
	return n
}

// newStamp mints a creation stamp. uuid.NewV7 only fails when the random
// source does; that is unrecoverable for the process.
func newStamp() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
