// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bidtree/bid"
)

// upper limit on reclaimed nodes retained by a tree
const maximumFreeNodes = 1024

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree) newNode(record bid.Bid) *Node {
	p := tree.pool
	if nil == p {
		return &Node{
			record: record,
		}
	}
	tree.pool = p.left
	tree.free -= 1

	p.left = nil // ensure freelist pointer is cleared
	p.record = record
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree) freeNode(p *Node) {
	p.right = nil
	p.record = bid.Bid{}
	p.leftNodes = 0
	if tree.free >= maximumFreeNodes {
		p.left = nil
		return
	}
	p.left = tree.pool // use as free list pointer
	tree.pool = p
	tree.free += 1
}
