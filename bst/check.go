// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"

	"github.com/bitmark-inc/bidtree/fault"
)

// Check - verify key ordering and the node counts
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: count: %d  actual: %d", fault.ErrTreeCorrupt, tree.count, n)
	}
	return nil
}

// internal: consistency checker, returns the size of the sub-tree
//
// keys must satisfy: lower <= key < upper
func check(p *Node, lower *string, upper *string) (int, error) {
	if nil == p {
		return 0, nil
	}
	key := p.record.BidId
	if nil != lower && key < *lower {
		return 0, fmt.Errorf("%w: node: %q is below: %q", fault.ErrTreeCorrupt, key, *lower)
	}
	if nil != upper && key >= *upper {
		return 0, fmt.Errorf("%w: node: %q is not below: %q", fault.ErrTreeCorrupt, key, *upper)
	}
	nl, err := check(p.left, lower, &key)
	if nil != err {
		return 0, err
	}
	if nl != p.leftNodes {
		return 0, fmt.Errorf("%w: node: %q left nodes: %d  actual: %d", fault.ErrTreeCorrupt, key, p.leftNodes, nl)
	}
	nr, err := check(p.right, &key, upper)
	if nil != err {
		return 0, err
	}
	return nl + nr + 1, nil
}
