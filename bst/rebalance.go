// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Rebalance - rebuild the tree into its minimal height shape
//
// the in-order values are already sorted and distinct, so they are
// passed straight to the builder
func (tree *Tree[T]) Rebalance() {
	values := tree.Values()

	if nil != log {
		log.Infof("rebalance: nodes: %d  was balanced: %t", len(values), tree.Balanced())
	}

	tree.root = build(values)
	tree.count = len(values)
}
