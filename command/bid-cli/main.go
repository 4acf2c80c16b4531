// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bidtree/bst"
	"github.com/bitmark-inc/bidtree/loader"
)

type metadata struct {
	file         string
	policy       bst.DuplicatePolicy
	verbose      bool
	logDirectory string
	log          *logger.L
	e            io.Writer
	w            io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultBidFile = "eBid_Monthly_Sales_Dec_2016.csv"

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bid-cli"
	app.Usage = "query a bid file through an ordered index"
	app.Version = version
	app.HideVersion = true
	app.Metadata = map[string]interface{}{}

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log to the console",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: defaultBidFile,
			Usage: " bid CSV `FILE`",
		},
		cli.StringFlag{
			Name:  "duplicates, d",
			Value: bst.RejectDuplicates.String(),
			Usage: " repeated bid id `POLICY` [reject|replace|allow]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "list",
			Usage:     "display all bids in bid id order",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " descending order",
				},
				cli.IntFlag{
					Name:  "offset, o",
					Value: 0,
					Usage: " skip the first `N` bids",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Value: 0,
					Usage: " display at most `N` bids [0 = all]",
				},
			},
			Action: runList,
		},
		{
			Name:      "find",
			Usage:     "display a single bid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*bid `ID`",
				},
			},
			Action: runFind,
		},
		{
			Name:      "remove",
			Usage:     "remove a bid and display the remainder",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*bid `ID`",
				},
			},
			Action: runRemove,
		},
		{
			Name:      "tree",
			Usage:     "draw the tree shape",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, D",
					Usage: " include the record in each node",
				},
			},
			Action: runTree,
		},
		{
			Name:      "stats",
			Usage:     "display the size and shape of the loaded tree",
			ArgsUsage: " ",
			Action:    runStats,
		},
		{
			Name:  "version",
			Usage: "display bid-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// check the global options and start logging
	app.Before = func(c *cli.Context) error {

		// to suppress logging for certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		policy, err := bst.ParseDuplicatePolicy(c.GlobalString("duplicates"))
		if nil != err {
			return fmt.Errorf("duplicates: %q  error: %w", c.GlobalString("duplicates"), err)
		}

		file := c.GlobalString("file")
		if "" == file {
			return fmt.Errorf("missing bid file")
		}

		verbose := c.GlobalBool("verbose")

		logDirectory, err := os.MkdirTemp("", "bid-cli-")
		if nil != err {
			return err
		}

		level := "critical"
		if verbose {
			level = "info"
		}
		logging := logger.Configuration{
			Directory: logDirectory,
			File:      "bid-cli.log",
			Size:      1024 * 1024,
			Count:     1,
			Console:   verbose,
			Levels: map[string]string{
				logger.DefaultTag: level,
			},
		}
		if err := logger.Initialise(logging); nil != err {
			os.RemoveAll(logDirectory)
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:         file,
			policy:       policy,
			verbose:      verbose,
			logDirectory: logDirectory,
			log:          logger.New("bid-cli"),
			e:            c.App.ErrWriter,
			w:            c.App.Writer,
		}
		return nil
	}

	// stop logging and discard the log files
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		delete(c.App.Metadata, "config")
		logger.Finalise()
		return os.RemoveAll(m.logDirectory)
	}

	return app
}

// load the bid file into a new tree
func (m *metadata) load() (*bst.Tree, *loader.Summary, error) {
	tree := bst.New(m.policy)
	summary, err := loader.LoadFile(m.file, loader.DefaultColumns, tree, m.log)
	if nil != err {
		return nil, nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "loaded: %d  rejected: %d  from: %q\n", summary.Inserted, summary.Rejected, m.file)
	}
	return tree, summary, nil
}
