// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bidtree/bid"
)

type statsInfo struct {
	File       string   `json:"file"`
	Duplicates string   `json:"duplicates"`
	Rows       int      `json:"rows"`
	Rejected   int      `json:"rejected"`
	Count      int      `json:"count"`
	Height     int      `json:"height"`
	Total      string   `json:"total"`
	First      *bid.Bid `json:"first,omitempty"`
	Last       *bid.Bid `json:"last,omitempty"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, summary, err := m.load()
	if nil != err {
		return err
	}

	info := statsInfo{
		File:       m.file,
		Duplicates: m.policy.String(),
		Rows:       summary.Rows,
		Rejected:   summary.Rejected,
		Count:      tree.Count(),
		Height:     tree.Height(),
	}

	total := bid.Amount(0)
	for record := range tree.All() {
		total += record.Amount
	}
	info.Total = total.Dollars()

	if first, ok := tree.First(); ok {
		info.First = &first
	}
	if last, ok := tree.Last(); ok {
		info.Last = &last
	}

	return printJson(m.w, info)
}
