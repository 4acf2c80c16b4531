// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bidtree/bid"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root   *Node
	count  int
	policy DuplicatePolicy
	pool   *Node // reclaimed nodes linked through left
	free   int   // number of nodes in the pool
}

// Node - a single record and its two sub-trees
type Node struct {
	left      *Node   // keys less than this node
	right     *Node   // keys greater than or equal to this node
	record    bid.Bid // data, ordered by BidId
	leftNodes int     // number of nodes in the left sub-tree
}

// New - create an initially empty tree
func New(policy DuplicatePolicy) *Tree {
	return &Tree{
		root:   nil,
		count:  0,
		policy: policy,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Policy - how inserts of an existing key are handled
func (tree *Tree) Policy() DuplicatePolicy {
	return tree.policy
}

// Root - return the root node of the tree
//
// node pointers are only valid until the next Insert or Remove,
// removed nodes are recycled and may then hold a different record
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node
func (p *Node) Key() string {
	return p.record.BidId
}

// Record - a copy of the record held in a node
func (p *Node) Record() bid.Bid {
	return p.record
}

// Left - the left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}
