// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - add a value to the tree
//
// returns the node holding the value, an existing node is returned
// unchanged if the value is already present.  No rebalancing is done.
func (tree *Tree[T]) Insert(value T) *Node[T] {
	if nil == tree.root {
		tree.root = newNode(value)
		tree.count += 1
		return tree.root
	}

	p := tree.root
	for {
		switch compare(p.value, value) {
		case +1: // p.value > value
			if nil == p.left {
				p.left = newNode(value)
				tree.count += 1
				return p.left
			}
			p = p.left
		case -1: // p.value < value
			if nil == p.right {
				p.right = newNode(value)
				tree.count += 1
				return p.right
			}
			p = p.right
		default:
			return p
		}
	}
}
