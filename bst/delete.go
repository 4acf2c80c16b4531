// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Remove - delete the record with a specific bid id
//
// returns false if the key was not present, the tree is then
// unchanged
func (tree *Tree) Remove(key string) bool {
	if !tree.remove(&tree.root, key) {
		return false
	}
	tree.count -= 1
	return true
}

// internal: remove key from the sub-tree held in slot *pp
func (tree *Tree) remove(pp **Node, key string) bool {
	target := locate(pp, key)
	if nil == target {
		return false // key not in tree
	}

	// the node will be removed, so every node where the path
	// turns left loses one node from its left sub-tree
	for *pp != *target {
		p := *pp
		if key < p.record.BidId {
			p.leftNodes -= 1
			pp = &p.left
		} else {
			pp = &p.right
		}
	}

	q := *pp
	switch {
	case nil == q.left && nil == q.right: // leaf
		*pp = nil
		tree.freeNode(q)

	case nil == q.right: // only a left child
		*pp = q.left
		tree.freeNode(q)

	case nil == q.left: // only a right child
		*pp = q.right
		tree.freeNode(q)

	default: // two children: take over the in-order successor
		successor := q.right.first()
		q.record = successor.record

		// the successor has no left child so this is one of the
		// cases above
		tree.remove(&q.right, successor.record.BidId)
	}
	return true
}

// internal: the slot that refers to the node matching key, or nil
func locate(pp **Node, key string) **Node {
	for nil != *pp {
		p := *pp
		switch {
		case key < p.record.BidId:
			pp = &p.left
		case key > p.record.BidId:
			pp = &p.right
		default:
			return pp
		}
	}
	return nil
}
