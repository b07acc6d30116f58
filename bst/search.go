// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Find - locate the node holding a specific value, nil if absent
func (tree *Tree[T]) Find(value T) *Node[T] {
	p := tree.root
	for nil != p {
		if p.value == value {
			return p
		}
		if value < p.value {
			p = p.left
		} else {
			p = p.right
		}
	}
	return nil
}

// MinValue - return the leftmost node of a sub-tree
//
// the sub-tree must not be empty
func (tree *Tree[T]) MinValue(node *Node[T]) (*Node[T], error) {
	if nil == node {
		return nil, fault.ErrEmptySubtree
	}
	return node.first(), nil
}
