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

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	bidId, err := checkBidId(c.String("id"))
	if nil != err {
		return err
	}

	tree, _, err := m.load()
	if nil != err {
		return err
	}

	if !tree.Remove(bidId) {
		return fmt.Errorf("bid id: %q  error: %w", bidId, fault.ErrNotFoundBidId)
	}
	m.log.Infof("removed bid id: %q", bidId)

	for record := range tree.All() {
		fmt.Fprintf(m.w, "%s\n", record)
	}
	return nil
}
