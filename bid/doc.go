// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bid - the auction bid record held by the ordered index
//
// A bid is identified by its bid id; the remaining fields are
// carried as data.  Amounts are fixed point values in cents so
// that no rounding occurs between the CSV text and the display.
package bid
