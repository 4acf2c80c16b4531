// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/bitmark-inc/bidtree/fault"
)

func checkBidId(bidId string) (string, error) {
	bidId = strings.TrimSpace(bidId)
	if "" == bidId {
		return "", fault.ErrEmptyBidId
	}
	return bidId, nil
}
