// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgraph/core"
)

func TestNode_Equality(t *testing.T) {
	a := core.NewNode("A")
	b := core.NewNode("A")

	assert.True(t, a.Equal(a), "node equals itself")
	assert.False(t, a.Equal(b), "separately created nodes with equal values differ")

	moved := a
	moved.ID = 42
	assert.True(t, a.Equal(moved), "identity does not take part in equality")

	changed := a
	changed.Value = "B"
	assert.False(t, a.Equal(changed), "value takes part in equality")
}

func TestNode_String(t *testing.T) {
	n := core.NewNode(7)
	n.ID = 3
	assert.Equal(t, "Id: 3, Value: 7", n.String())
}

func TestDirection_String(t *testing.T) {
	cases := map[core.Direction]string{
		core.DirectionNone:  "none",
		core.DirectionTo:    "to",
		core.DirectionFrom:  "from",
		core.DirectionLeft:  "left",
		core.DirectionRight: "right",
	}
	for d, want := range cases {
		assert.Equal(t, want, d.String())
	}
}

func TestEdge_Directed(t *testing.T) {
	e, err := core.NewEdge(1, 4, true)
	require.NoError(t, err)

	assert.True(t, e.Directed())
	assert.Equal(t, 1, e.Source())
	assert.Equal(t, 4, e.Target())

	dir, ok := e.Direction(1)
	require.True(t, ok)
	assert.Equal(t, core.DirectionFrom, dir)
	dir, ok = e.Direction(4)
	require.True(t, ok)
	assert.Equal(t, core.DirectionTo, dir)
	_, ok = e.Direction(2)
	assert.False(t, ok)

	assert.Equal(t, "id: 1, direction: from\nid: 4, direction: to", e.String())
}

func TestEdge_Undirected(t *testing.T) {
	e, err := core.NewEdge(0, 2, false)
	require.NoError(t, err)

	assert.False(t, e.Directed())
	a, b := e.Endpoints()
	assert.Equal(t, core.Endpoint{ID: 0, Direction: core.DirectionNone}, a)
	assert.Equal(t, core.Endpoint{ID: 2, Direction: core.DirectionNone}, b)
	assert.True(t, e.Has(0))
	assert.True(t, e.Has(2))
	assert.False(t, e.Has(1))
}

func TestEdge_Other(t *testing.T) {
	e, err := core.NewEdge(3, 5, false)
	require.NoError(t, err)

	other, err := e.Other(3)
	require.NoError(t, err)
	assert.Equal(t, 5, other)

	other, err = e.Other(5)
	require.NoError(t, err)
	assert.Equal(t, 3, other)

	_, err = e.Other(9)
	assert.ErrorIs(t, err, core.ErrInvariantViolation)
}

func TestEdge_SelfLoopRejected(t *testing.T) {
	_, err := core.NewEdge(2, 2, false)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestEdge_IdentityIsStamp(t *testing.T) {
	e1, err := core.NewEdge(0, 1, false)
	require.NoError(t, err)
	e2, err := core.NewEdge(0, 1, false)
	require.NoError(t, err)

	assert.True(t, e1.Equal(e1))
	assert.False(t, e1.Equal(e2), "structurally identical edges created separately are distinct")
}
