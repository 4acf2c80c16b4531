// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bid-cli - one shot queries against a bid file
//
// each run loads the CSV file into a fresh tree, performs a single
// command and prints the result, e.g.:
//
//	bid-cli --file=sales.csv find --id=98109
//	bid-cli --file=sales.csv --duplicates=allow stats
package main
