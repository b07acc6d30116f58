// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// LevelOrder - breadth first list of all nodes, root first then each
// level from left to right
//
// any visitors are called for each value in the same order
func (tree *Tree[T]) LevelOrder(visitors ...Visitor[T]) []*Node[T] {
	nodes := make([]*Node[T], 0, tree.count)
	if nil == tree.root {
		return nodes
	}

	queue := []*Node[T]{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
		nodes = append(nodes, p)
	}
	return visit(nodes, visitors)
}

// InOrder - list of all nodes in ascending value order
func (tree *Tree[T]) InOrder(visitors ...Visitor[T]) []*Node[T] {
	return visit(inorder(tree.root, make([]*Node[T], 0, tree.count)), visitors)
}

// PreOrder - list of all nodes, each node before its sub-trees
func (tree *Tree[T]) PreOrder(visitors ...Visitor[T]) []*Node[T] {
	return visit(preorder(tree.root, make([]*Node[T], 0, tree.count)), visitors)
}

// PostOrder - list of all nodes, each node after its sub-trees
func (tree *Tree[T]) PostOrder(visitors ...Visitor[T]) []*Node[T] {
	return visit(postorder(tree.root, make([]*Node[T], 0, tree.count)), visitors)
}

// Values - the values of the tree in ascending order
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.count)
	for _, p := range tree.InOrder() {
		values = append(values, p.value)
	}
	return values
}

func inorder[T cmp.Ordered](p *Node[T], nodes []*Node[T]) []*Node[T] {
	if nil == p {
		return nodes
	}
	nodes = inorder(p.left, nodes)
	nodes = append(nodes, p)
	return inorder(p.right, nodes)
}

func preorder[T cmp.Ordered](p *Node[T], nodes []*Node[T]) []*Node[T] {
	if nil == p {
		return nodes
	}
	nodes = append(nodes, p)
	nodes = preorder(p.left, nodes)
	return preorder(p.right, nodes)
}

func postorder[T cmp.Ordered](p *Node[T], nodes []*Node[T]) []*Node[T] {
	if nil == p {
		return nodes
	}
	nodes = postorder(p.left, nodes)
	nodes = postorder(p.right, nodes)
	return append(nodes, p)
}

// call each visitor on every node value, in list order
func visit[T cmp.Ordered](nodes []*Node[T], visitors []Visitor[T]) []*Node[T] {
	for _, v := range visitors {
		if nil == v {
			continue
		}
		for _, p := range nodes {
			v(p.value)
		}
	}
	return nodes
}
