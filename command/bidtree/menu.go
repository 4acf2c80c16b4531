// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bidtree/bst"
	"github.com/bitmark-inc/bidtree/loader"
)

// reloader - source of bid file notifications
type reloader interface {
	Changed() <-chan struct{}
	Removed() <-chan struct{}
}

// session - the interactive menu and the only owner of its tree
type session struct {
	log     *logger.L
	tree    *bst.Tree
	bidFile string
	bidId   string
	columns loader.Columns
	quiet   bool
	loaded  bool
	watch   reloader // optional
	now     func() time.Time
	in      *bufio.Scanner
	out     io.Writer
}

func newSession(log *logger.L, options *Configuration, in io.Reader, out io.Writer) *session {
	return &session{
		log:     log,
		tree:    bst.New(options.duplicatePolicy()),
		bidFile: options.BidFile,
		bidId:   options.BidId,
		columns: options.Columns,
		now:     time.Now,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// run the menu until exit or end of input
func (s *session) run() {
	for {
		s.poll()

		fmt.Fprintf(s.out, "Menu:\n")
		fmt.Fprintf(s.out, "  1. Load Bids\n")
		fmt.Fprintf(s.out, "  2. Display All Bids\n")
		fmt.Fprintf(s.out, "  3. Find Bid\n")
		fmt.Fprintf(s.out, "  4. Remove Bid\n")
		fmt.Fprintf(s.out, "  5. Print Tree\n")
		fmt.Fprintf(s.out, "  9. Exit\n")
		fmt.Fprintf(s.out, "Enter choice: ")

		choice, ok := s.readLine()
		if !ok {
			fmt.Fprintf(s.out, "\n")
			break
		}

		s.poll()

		switch choice {
		case "1":
			s.load()
		case "2":
			s.display()
		case "3":
			s.find()
		case "4":
			s.remove()
		case "5":
			s.print()
		case "9":
			fmt.Fprintf(s.out, "Good bye.\n")
			return
		default:
			fmt.Fprintf(s.out, "invalid choice: %q\n", choice)
		}
	}
	fmt.Fprintf(s.out, "Good bye.\n")
}

// next trimmed input line, false at end of input
func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		if err := s.in.Err(); nil != err {
			s.log.Errorf("read input error: %s", err)
		}
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// check for bid file notifications without blocking
func (s *session) poll() {
	if nil == s.watch {
		return
	}
	select {
	case <-s.watch.Removed():
		s.log.Warnf("bid file: %q was removed", s.bidFile)
		fmt.Fprintf(s.out, "bid file removed: %s\n", s.bidFile)
	default:
	}
	select {
	case <-s.watch.Changed():
		if !s.loaded {
			s.log.Debug("bid file changed before first load")
			return
		}
		s.log.Infof("bid file: %q changed, reloading", s.bidFile)
		fmt.Fprintf(s.out, "bid file changed, reloading\n")
		s.load()
	default:
	}
}

// menu item 1: replace the tree with the contents of the bid file
//
// the file is loaded into a new tree, on any error the current tree
// is kept unchanged
func (s *session) load() {
	start := s.now()

	fmt.Fprintf(s.out, "Loading CSV file %s\n", s.bidFile)

	tree := bst.New(s.tree.Policy())
	summary, err := loader.LoadFile(s.bidFile, s.columns, tree, s.log)
	if nil != err {
		s.log.Errorf("load: %q  error: %s", s.bidFile, err)
		fmt.Fprintf(s.out, "error: %s\n", err)
		fmt.Fprintf(s.out, "%d bids kept\n", s.tree.Count())
		return
	}
	s.tree = tree
	s.loaded = true

	for _, column := range summary.Header {
		fmt.Fprintf(s.out, "%s | ", column)
	}
	fmt.Fprintf(s.out, "\n")

	fmt.Fprintf(s.out, "%d bids read\n", s.tree.Count())
	if summary.Rejected > 0 {
		fmt.Fprintf(s.out, "%d rows rejected\n", summary.Rejected)
	}
	s.elapsed(start)
}

// menu item 2
func (s *session) display() {
	for record := range s.tree.All() {
		fmt.Fprintf(s.out, "%s\n", record)
	}
}

// menu item 3
func (s *session) find() {
	bidId, ok := s.promptBidId()
	if !ok {
		return
	}

	start := s.now()
	record, found := s.tree.Search(bidId)
	if found {
		fmt.Fprintf(s.out, "%s\n", record)
	} else {
		fmt.Fprintf(s.out, "Bid Id %s not found.\n", bidId)
	}
	s.elapsed(start)
}

// menu item 4
func (s *session) remove() {
	bidId, ok := s.promptBidId()
	if !ok {
		return
	}

	start := s.now()
	if s.tree.Remove(bidId) {
		s.log.Infof("removed bid id: %q", bidId)
		fmt.Fprintf(s.out, "Bid Id %s removed.\n", bidId)
	} else {
		fmt.Fprintf(s.out, "Bid Id %s not found.\n", bidId)
	}
	s.elapsed(start)
}

// menu item 5
func (s *session) print() {
	if s.tree.IsEmpty() {
		fmt.Fprintf(s.out, "tree is empty\n")
		return
	}
	depth := s.tree.Print(s.out, false)
	fmt.Fprintf(s.out, "%d bids, depth: %d\n", s.tree.Count(), depth)
}

// blank input selects the default bid id
func (s *session) promptBidId() (string, bool) {
	fmt.Fprintf(s.out, "Enter Bid Id [%s]: ", s.bidId)
	bidId, ok := s.readLine()
	if !ok {
		fmt.Fprintf(s.out, "\n")
		return "", false
	}
	if "" == bidId {
		bidId = s.bidId
	}
	return bidId, true
}

// elapsed time in microsecond ticks and seconds
func (s *session) elapsed(start time.Time) {
	if s.quiet {
		return
	}
	d := s.now().Sub(start)
	fmt.Fprintf(s.out, "time: %d clock ticks\n", d.Microseconds())
	fmt.Fprintf(s.out, "time: %g seconds\n", d.Seconds())
}
