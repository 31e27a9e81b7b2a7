// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec

import "errors"

var (
	// ErrNotComposite reports a vector expected to be block-partitioned
	// that is not, i.e. a violated restoration-space layout invariant.
	ErrNotComposite = errors.New("vec: vector is not composite")
	// ErrNoBlock reports a block index outside the partition.
	ErrNoBlock = errors.New("vec: no such block")
)

// Composite is a vector partitioned into an ordered sequence of Dense blocks.
// Restoration-space vectors are composite with block 0 holding the
// corresponding original-space vector.
type Composite struct {
	blocks []Dense
}

// NewComposite builds a composite vector from the given blocks.
// The blocks are referenced, not copied.
func NewComposite(blocks ...Dense) *Composite {
	return &Composite{blocks: blocks}
}

// Len returns the total number of elements across all blocks.
func (c *Composite) Len() int {
	n := 0
	for _, b := range c.blocks {
		n += len(b)
	}
	return n
}

// NumBlocks returns the number of blocks in the partition.
func (c *Composite) NumBlocks() int { return len(c.blocks) }

// Block returns the i-th block.
func (c *Composite) Block(i int) (Dense, error) {
	if i < 0 || i >= len(c.blocks) {
		return nil, ErrNoBlock
	}
	return c.blocks[i], nil
}

// Original returns block 0, the original-space part of a restoration-space
// vector.
func (c *Composite) Original() (Dense, error) {
	return c.Block(0)
}

// AsComposite narrows v to a Composite, reporting ErrNotComposite when the
// structural invariant does not hold.
func AsComposite(v Vector) (*Composite, error) {
	c, ok := v.(*Composite)
	if !ok || c == nil {
		return nil, ErrNotComposite
	}
	return c, nil
}

// OriginalBlock extracts the original-space part of a restoration-space
// vector: it narrows v to a composite and returns block 0.
func OriginalBlock(v Vector) (Dense, error) {
	c, err := AsComposite(v)
	if err != nil {
		return nil, err
	}
	return c.Original()
}
