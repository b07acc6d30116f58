// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"

	"github.com/bitmark-inc/bstree/fault"
)

// Depth - number of edges from the root to the node holding value
//
// returns false if the value is not in the tree
func (tree *Tree[T]) Depth(value T) (int, bool) {
	depth := 0
	p := tree.root
	for nil != p {
		switch compare(value, p.value) {
		case -1: // value < p.value
			p = p.left
		case +1: // value > p.value
			p = p.right
		default:
			return depth, true
		}
		depth += 1
	}
	return 0, false
}

// Height - number of edges from the node holding value down to its
// deepest leaf
//
// the value must be present, otherwise fault.ErrValueNotFound is
// returned
func (tree *Tree[T]) Height(value T) (int, error) {
	p := tree.Find(value)
	if nil == p {
		return 0, fault.ErrValueNotFound
	}
	return height(p), nil
}

// MustHeight - as Height but panics if the value is not present
func (tree *Tree[T]) MustHeight(value T) int {
	h, err := tree.Height(value)
	if nil != err {
		fault.Panicf("height of: %v  error: %s", value, err)
	}
	return h
}

// internal: height of a non-empty sub-tree, only the children that
// are present contribute
func height[T cmp.Ordered](p *Node[T]) int {
	switch {
	case nil == p.left && nil == p.right:
		return 0
	case nil == p.left:
		return 1 + height(p.right)
	case nil == p.right:
		return 1 + height(p.left)
	}
	return 1 + max(height(p.left), height(p.right))
}

// NodesAtDepth - all nodes at a specific depth, left to right
func (tree *Tree[T]) NodesAtDepth(depth uint) []*Node[T] {
	if nil == tree.root {
		return []*Node[T]{}
	}
	return tree.root.ChildrenByDepth(depth)
}

// ChildrenByDepth - returns all descendants at a specific depth below
// this node, depth zero is the node itself
func (p *Node[T]) ChildrenByDepth(depth uint) []*Node[T] {
	if depth == 0 {
		return []*Node[T]{p}
	}

	nodes := []*Node[T]{}
	if nil != p.left {
		nodes = append(nodes, p.left.ChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.ChildrenByDepth(depth-1)...)
	}
	return nodes
}
