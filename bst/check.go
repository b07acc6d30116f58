// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// IsLeaf - true if the node is nil or has no children
func (p *Node[T]) IsLeaf() bool {
	return nil == p || (nil == p.left && nil == p.right)
}

// Balanced - check the whole tree for balance
func (tree *Tree[T]) Balanced() bool {
	return balanced(tree.root)
}

// BalancedAt - check the sub-tree below a node for balance
func (tree *Tree[T]) BalancedAt(node *Node[T]) bool {
	return balanced(node)
}

// internal: a node is balanced if it is locally balanced and both of
// its sub-trees are balanced
func balanced[T cmp.Ordered](p *Node[T]) bool {
	if p.IsLeaf() {
		return true
	}
	if !locallyBalanced(p) {
		return false
	}
	return balanced(p.left) && balanced(p.right)
}

// a single child is allowed a height of one
func locallyBalanced[T cmp.Ordered](p *Node[T]) bool {
	switch {
	case nil == p.left:
		return height(p.right) <= 1
	case nil == p.right:
		return height(p.left) <= 1
	}
	d := height(p.right) - height(p.left)
	return d >= -1 && d <= 1
}

// CheckOrder - verify the ordering of every sub-tree and the node count
func (tree *Tree[T]) CheckOrder() bool {
	n, ok := checkOrder(tree.root, nil, nil)
	if !ok {
		return false
	}
	if n != tree.count {
		if nil != log {
			log.Errorf("count: actual: %d  expected: %d", n, tree.count)
		}
		return false
	}
	return true
}

// internal: consistency checker, low and high are the exclusive bounds
// inherited from the ancestors, returns the number of nodes visited
func checkOrder[T cmp.Ordered](p *Node[T], low *Node[T], high *Node[T]) (int, bool) {
	if nil == p {
		return 0, true
	}
	if (nil != low && p.Compare(low) <= 0) || (nil != high && p.Compare(high) >= 0) {
		if nil != log {
			log.Errorf("fail at node: %v  out of order", p.value)
		}
		return 0, false
	}
	nl, ok := checkOrder(p.left, low, p)
	if !ok {
		return 0, false
	}
	nr, ok := checkOrder(p.right, p, high)
	if !ok {
		return 0, false
	}
	return 1 + nl + nr, true
}
