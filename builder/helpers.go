// SPDX-License-Identifier: MIT
// Package: fgraph/builder
//
// helpers.go - shared plumbing for constructors: appending a block of nodes
// and connecting local index pairs inside that block.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/fgraph/core"
)

// block is a run of nodes appended by one constructor. Local index i maps to
// graph identity base+i.
type block struct {
	g    *core.Graph[string]
	base int
}

// appendBlock adds values to g in order and returns the resulting block.
// Complexity: O(len(values) * V) for the snapshot copies.
func appendBlock(g *core.Graph[string], values []string) block {
	b := block{g: g, base: g.NodeCount()}
	for _, v := range values {
		b.g = b.g.Add(v)
	}

	return b
}

// connect links local indices i and j of the block.
func (b *block) connect(method string, i, j int) error {
	g, err := b.g.ConnectAt(b.base+i, b.base+j)
	if err != nil {
		return fmt.Errorf("%s: ConnectAt(%d,%d): %w: %w", method, b.base+i, b.base+j, ErrConstructFailed, err)
	}
	b.g = g

	return nil
}

// connectBoth links i->j and, on directed graphs, j->i as well.
func (b *block) connectBoth(method string, i, j int) error {
	if err := b.connect(method, i, j); err != nil {
		return err
	}
	if b.g.Directed() {
		return b.connect(method, j, i)
	}

	return nil
}

// makeValues returns idFn(0..n-1), or ErrConstructFailed wrapping the
// scheme's error when n exceeds its domain.
func makeValues(method string, n int, idFn IDFn) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		v, err := idFn(i)
		if err != nil {
			return nil, fmt.Errorf("%s: %d values: %w: %w", method, n, ErrConstructFailed, err)
		}
		out[i] = v
	}

	return out, nil
}

// gridValue formats a grid coordinate as "r,c".
func gridValue(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// tooFew reports a size parameter below its minimum.
func tooFew(method, name string, got, minimum int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, minimum, ErrTooFewVertices)
}
