// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bidtree/bst"
	"github.com/bitmark-inc/bidtree/fault"
	"github.com/bitmark-inc/bidtree/loader"
)

// setup command handler
// these commands run before the configuration is read
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)
		return true

	case "help", "h", "?":
		printUsage(w, program)
		return true

	default: // unknown commands fall through to data command
		return false
	}
}

func printUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--bid-file=CSV] [--bid-id=ID] [[command|help] arguments...]\n", program)

	fmt.Fprintf(w, "supported commands:\n\n")
	fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
	fmt.Fprintf(w, "  version                    (v)      - display version sting\n\n")

	fmt.Fprintf(w, "  list                       (l)      - load the bid file and display all bids in key order\n\n")
	fmt.Fprintf(w, "  find [ID]                  (f)      - load the bid file and display one bid\n")
	fmt.Fprintf(w, "                                        ID defaults to the configured bid_id\n\n")
	fmt.Fprintf(w, "  remove ID                  (r)      - load the bid file, remove a bid and display the rest\n\n")
	fmt.Fprintf(w, "  print                      (p)      - load the bid file and draw the tree\n\n")
	fmt.Fprintf(w, "  count                      (c)      - load the bid file and display the number of bids\n\n")
	fmt.Fprintf(w, "  check                               - load the bid file and verify the tree ordering\n\n")

	fmt.Fprintf(w, "with no command an interactive menu is started\n\n")
}

// data command handler
// the bid file is loaded into a fresh tree for each command
// returns false if no command was given and the menu should run
func processDataCommand(w io.Writer, log *logger.L, arguments []string, options *Configuration) bool {

	if 0 == len(arguments) {
		return false
	}

	command := arguments[0]
	arguments = arguments[1:]

	tree := bst.New(options.duplicatePolicy())

	switch command {

	case "list", "l":
		mustLoad(log, tree, options)
		for record := range tree.All() {
			fmt.Fprintf(w, "%s\n", record)
		}

	case "find", "f":
		bidId := options.BidId
		if len(arguments) > 0 {
			bidId = arguments[0]
		}
		mustLoad(log, tree, options)
		record, ok := tree.Search(bidId)
		if !ok {
			exitwithstatus.Message("Bid Id %s not found.", bidId)
		}
		fmt.Fprintf(w, "%s\n", record)

	case "remove", "r":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing bid id argument")
		}
		bidId := arguments[0]
		mustLoad(log, tree, options)
		if !tree.Remove(bidId) {
			exitwithstatus.Message("Bid Id %s not found.", bidId)
		}
		log.Infof("removed bid id: %q", bidId)
		for record := range tree.All() {
			fmt.Fprintf(w, "%s\n", record)
		}

	case "print", "p":
		mustLoad(log, tree, options)
		tree.Print(w, false)

	case "count", "c":
		mustLoad(log, tree, options)
		fmt.Fprintf(w, "%d\n", tree.Count())

	case "check":
		mustLoad(log, tree, options)
		if err := tree.Check(); nil != err {
			fault.Criticalf("tree check: %q  error: %s", options.BidFile, err)
			exitwithstatus.Message("tree check failed: %s", err)
		}
		fmt.Fprintf(w, "ok: %d bids  height: %d\n", tree.Count(), tree.Height())

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// load the configured file or terminate
func mustLoad(log *logger.L, tree *bst.Tree, options *Configuration) {
	summary, err := loader.LoadFile(options.BidFile, options.Columns, tree, log)
	if nil != err {
		exitwithstatus.Message("load: %q  error: %s", options.BidFile, err)
	}
	log.Infof("rows: %d  inserted: %d  rejected: %d", summary.Rows, summary.Inserted, summary.Rejected)
}
