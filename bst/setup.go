// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[T cmp.Ordered] struct {
	root  *Node[T]
	count int
}

// Visitor - called with each value produced by a traversal
type Visitor[T cmp.Ordered] func(value T)

// New - create an initially empty tree
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}
