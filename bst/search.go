// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bidtree/bid"
)

// Search - find the record with a specific bid id
//
// with duplicates allowed the match nearest the root is returned,
// which is the earliest inserted of the equal keys
func (tree *Tree) Search(key string) (bid.Bid, bool) {
	p := tree.find(key)
	if nil == p {
		return bid.Bid{}, false
	}
	return p.record, true
}

// internal: locate the node holding key
func (tree *Tree) find(key string) *Node {
	p := tree.root
	for nil != p {
		switch {
		case p.record.BidId == key:
			return p
		case key < p.record.BidId:
			p = p.left
		default:
			p = p.right
		}
	}
	return nil
}

// First - return the record with the lowest key
func (tree *Tree) First() (bid.Bid, bool) {
	p := tree.root.first()
	if nil == p {
		return bid.Bid{}, false
	}
	return p.record, true
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the record with the highest key
func (tree *Tree) Last() (bid.Bid, bool) {
	p := tree.root.last()
	if nil == p {
		return bid.Bid{}, false
	}
	return p.record, true
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
