// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTree(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, _, err := m.load()
	if nil != err {
		return err
	}

	if tree.IsEmpty() {
		fmt.Fprintf(m.w, "tree is empty\n")
		return nil
	}
	tree.Print(m.w, c.Bool("data"))
	return nil
}
