// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Delete - removes a specific value from the tree
//
// returns true if a node was removed, deleting an absent value leaves
// the tree unchanged.  No rebalancing is done.
func (tree *Tree[T]) Delete(value T) bool {
	removed := false
	tree.root, removed = remove(value, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine, returns the possibly new sub-tree root
func remove[T cmp.Ordered](value T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	removed := false
	switch compare(p.value, value) {
	case +1: // p.value > value
		p.left, removed = remove(value, p.left)
	case -1: // p.value < value
		p.right, removed = remove(value, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: take over the in-order successor's value
		// then remove the successor from the right sub-tree
		successor := p.right.first()
		if nil != log {
			log.Tracef("delete: %v replaced by successor: %v", p.value, successor.value)
		}
		p.value = successor.value
		p.right, _ = remove(successor.value, p.right)
		removed = true
	}
	return p, removed
}
