// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"github.com/bitmark-inc/bidtree/fault"
)

// Columns - zero based CSV column of each bid field
type Columns struct {
	Title  int `gluamapper:"title" json:"title"`
	BidId  int `gluamapper:"bid_id" json:"bid_id"`
	Amount int `gluamapper:"amount" json:"amount"`
	Fund   int `gluamapper:"fund" json:"fund"`
}

// DefaultColumns - layout of the monthly sales export
var DefaultColumns = Columns{
	Title:  0,
	BidId:  1,
	Amount: 4,
	Fund:   8,
}

// Validate - columns must be non-negative and distinct
func (c Columns) Validate() error {
	seen := make(map[int]struct{}, 4)
	for _, n := range []int{c.Title, c.BidId, c.Amount, c.Fund} {
		if n < 0 {
			return fault.ErrInvalidColumns
		}
		if _, ok := seen[n]; ok {
			return fault.ErrInvalidColumns
		}
		seen[n] = struct{}{}
	}
	return nil
}

// the number of fields a row needs to hold every column
func (c Columns) width() int {
	w := 0
	for _, n := range []int{c.Title, c.BidId, c.Amount, c.Fund} {
		if n >= w {
			w = n + 1
		}
	}
	return w
}
