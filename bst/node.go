// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Node - a value in the tree together with its two sub-trees
type Node[T cmp.Ordered] struct {
	left  *Node[T] // left sub-tree, all values less than value
	right *Node[T] // right sub-tree, all values greater than value
	value T
}

// allocate a new childless node
func newNode[T cmp.Ordered](value T) *Node[T] {
	return &Node[T]{
		value: value,
	}
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Left - return the left child of a node, nil if none
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - return the right child of a node, nil if none
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Compare - order two nodes by their values
//
// returns:
//    0 if the values are equal
//   +1 if p.value > q.value
//   -1 otherwise
func (p *Node[T]) Compare(q *Node[T]) int {
	return compare(p.value, q.value)
}

func compare[T cmp.Ordered](a T, b T) int {
	if a == b {
		return 0
	}
	if a > b {
		return +1
	}
	return -1
}
