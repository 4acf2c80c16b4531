// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package loader - read bids from a CSV export into an index
//
// The first row is a header.  Every following row becomes one
// bid.Bid passed to Insert, in file order.  Rows that cannot be
// converted or are refused by the index are logged and counted but
// do not stop the load; a CSV syntax error does.
package loader
