// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bid

import (
	"fmt"

	"github.com/bitmark-inc/bidtree/fault"
)

// Bid - a single auction record
type Bid struct {
	BidId  string `json:"bidId"`
	Title  string `json:"title"`
	Amount Amount `json:"amount"`
	Fund   string `json:"fund"`
}

// Validate - check that the record can be indexed
func (b Bid) Validate() error {
	if "" == b.BidId {
		return fault.ErrEmptyBidId
	}
	return nil
}

// String - the single line display form
func (b Bid) String() string {
	return fmt.Sprintf("%s: %s | %s | %s", b.BidId, b.Title, b.Amount, b.Fund)
}
