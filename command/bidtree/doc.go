// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bidtree - load monthly auction results into an ordered index
//
// without a command an interactive menu loads, displays, finds and
// removes bids; with a command the bid file is loaded and the single
// command is run
//
// the optional Lua configuration file sets the bid file, the default
// bid id, the duplicate policy, the CSV column layout and logging; if
// "watch" is set the bid file is reloaded when it changes on disk
package main
