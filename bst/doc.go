// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a binary search tree that is built balanced from an
// unsorted sequence and rebalanced only on request
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Construction sorts the input, drops duplicates and splits the
// result at the middle element recursively.  Insert and Delete are
// plain BST operations that never rotate, so the shape can drift;
// Balanced reports the drift and Rebalance rebuilds the tree from its
// in-order contents.
//
// Nodes only point down to their children, there are no parent
// pointers.
package bst
