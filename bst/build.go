// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
	"slices"
)

// Build - create a tree from an arbitrary sequence of values
//
// the values are sorted and duplicates dropped before the tree is
// constructed, the input slice is not modified
func Build[T cmp.Ordered](elements []T) *Tree[T] {
	sorted := slices.Clone(elements)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	tree := &Tree[T]{
		root:  build(sorted),
		count: len(sorted),
	}

	if nil != log {
		log.Debugf("build: elements: %d  distinct: %d", len(elements), len(sorted))
	}
	return tree
}

// internal: build a sub-tree from sorted distinct values
//
// the middle element (len/2) becomes the root of the sub-tree and the
// two halves on either side are built recursively
func build[T cmp.Ordered](sorted []T) *Node[T] {
	switch len(sorted) {
	case 0:
		return nil
	case 1:
		return newNode(sorted[0])
	}

	middle := len(sorted) / 2

	p := newNode(sorted[middle])
	p.left = build(sorted[:middle])
	p.right = build(sorted[middle+1:])
	return p
}
