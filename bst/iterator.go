// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"iter"

	"github.com/bitmark-inc/bidtree/bid"
)

// initial capacity of the walk stack, grows as needed
const stackSize = 32

// All - the records in ascending key order
//
// each range over the result is a fresh walk of the current tree;
// the tree must not be modified until the walk finishes
func (tree *Tree) All() iter.Seq[bid.Bid] {
	return func(yield func(bid.Bid) bool) {
		stack := make([]*Node, 0, stackSize)
		p := tree.root
		for nil != p || len(stack) > 0 {
			for nil != p {
				stack = append(stack, p)
				p = p.left
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.record) {
				return
			}
			p = p.right
		}
	}
}

// Backward - the records in descending key order
func (tree *Tree) Backward() iter.Seq[bid.Bid] {
	return func(yield func(bid.Bid) bool) {
		stack := make([]*Node, 0, stackSize)
		p := tree.root
		for nil != p || len(stack) > 0 {
			for nil != p {
				stack = append(stack, p)
				p = p.right
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.record) {
				return
			}
			p = p.left
		}
	}
}
