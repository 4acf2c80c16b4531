// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bidtree/bid"
)

// Get - the record at a position in key order
func (tree *Tree) Get(index int) (bid.Bid, bool) {
	if index < 0 || index >= tree.count {
		return bid.Bid{}, false
	}

	p := tree.root
	for nil != p {
		nl := p.leftNodes
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return p.record, true
		}
	}
	return bid.Bid{}, false
}
