// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bidtree/bid"
	"github.com/bitmark-inc/bidtree/fault"
)

// Insert - add a copy of a record to the tree
//
// an empty bid id is rejected; an existing bid id is handled
// according to the tree's duplicate policy
func (tree *Tree) Insert(record bid.Bid) error {
	if err := record.Validate(); nil != err {
		return err
	}

	if AllowDuplicates != tree.policy {
		if p := tree.find(record.BidId); nil != p {
			if ReplaceDuplicates == tree.policy {
				p.record = record
				return nil
			}
			return fault.ErrBidIdExists
		}
	}

	pp := &tree.root
	for nil != *pp {
		p := *pp
		if p.record.BidId > record.BidId { // p.key > key
			p.leftNodes += 1
			pp = &p.left
		} else {
			pp = &p.right
		}
	}
	*pp = tree.newNode(record)
	tree.count += 1
	return nil
}
