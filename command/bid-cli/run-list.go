// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bidtree/fault"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	offset := c.Int("offset")
	limit := c.Int("limit")
	if offset < 0 || limit < 0 {
		return fmt.Errorf("offset: %d  limit: %d  error: %w", offset, limit, fault.ErrInvalidRange)
	}

	tree, _, err := m.load()
	if nil != err {
		return err
	}
	reverse := c.Bool("reverse")

	// whole tree
	if 0 == offset && 0 == limit {
		records := tree.All()
		if reverse {
			records = tree.Backward()
		}
		for record := range records {
			fmt.Fprintf(m.w, "%s\n", record)
		}
		return nil
	}

	// a page of positions in display order
	count := tree.Count()
	end := count
	if limit > 0 && offset+limit < count {
		end = offset + limit
	}
	for i := offset; i < end; i += 1 {
		index := i
		if reverse {
			index = count - 1 - i
		}
		record, ok := tree.Get(index)
		if !ok {
			break
		}
		fmt.Fprintf(m.w, "%s\n", record)
	}
	return nil
}
