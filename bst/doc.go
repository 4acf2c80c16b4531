// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree of bids ordered by
// bid id
//
// Note: an individual tree is not thread safe, so either access only
//
//	in a single go routine or use mutex/rwmutex to restrict
//	access.
//
// Items are routed left when the node's key is greater than the new
// key and right otherwise, so an equal key always descends to the
// right.  No rebalancing is done: sorted input produces a chain and
// all operations are then linear in the number of nodes.  Insert,
// search, remove and the iterators are loops rather than recursion
// so a degenerate tree costs time but not stack.
//
// A node removed with two children keeps its position in the tree;
// the record of its in-order successor is copied into it and the
// successor node is unlinked instead.
package bst
