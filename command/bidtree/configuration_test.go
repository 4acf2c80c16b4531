// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bidtree/bst"
	"github.com/bitmark-inc/bidtree/fault"
	"github.com/bitmark-inc/bidtree/loader"
)

const fullConfiguration = `
local directory = "."
return {
  data_directory = directory,
  bid_file = "sales.csv",
  bid_id = "98223",
  duplicates = "Allow",
  watch = true,
  reload_interval = 5,
  columns = { title = 1, bid_id = 0, amount = 2, fund = 3 },
  logging = {
    directory = "logs",
    file = "bids.log",
    size = 4096,
    count = 3,
    console = true,
    levels = { DEFAULT = "debug" },
  },
}
`

func TestGetConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "bidtree.conf", fullConfiguration)

	options, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "get configuration") {
		return
	}

	assert.Equal(t, filepath.Clean(dir), options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "sales.csv"), options.BidFile, "bid file")
	assert.Equal(t, "98223", options.BidId, "bid id")
	assert.Equal(t, "allow", options.Duplicates, "duplicates")
	assert.Equal(t, bst.AllowDuplicates, options.duplicatePolicy(), "policy")
	assert.True(t, options.Watch, "watch")
	assert.Equal(t, 5*time.Second, options.reloadInterval(), "reload interval")
	assert.Equal(t, loader.Columns{Title: 1, BidId: 0, Amount: 2, Fund: 3}, options.Columns, "columns")

	assert.Equal(t, filepath.Join(dir, "logs"), options.Logging.Directory, "log directory")
	assert.Equal(t, "bids.log", options.Logging.File, "log file")
	assert.Equal(t, 4096, options.Logging.Size, "log size")
	assert.Equal(t, 3, options.Logging.Count, "log count")
	assert.True(t, options.Logging.Console, "console")
	assert.Equal(t, "debug", options.Logging.Levels["DEFAULT"], "default level")
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "bidtree.conf", "return {}\n")

	options, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "get configuration") {
		return
	}

	assert.Equal(t, filepath.Join(dir, defaultBidFile), options.BidFile, "bid file")
	assert.Equal(t, defaultBidId, options.BidId, "bid id")
	assert.Equal(t, bst.RejectDuplicates, options.duplicatePolicy(), "policy")
	assert.False(t, options.Watch, "watch")
	assert.Equal(t, 2*time.Second, options.reloadInterval(), "reload interval")
	assert.Equal(t, loader.DefaultColumns, options.Columns, "columns")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "log directory")
}

func TestGetConfigurationWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	assert.Nil(t, err, "getwd")

	options, err := getConfiguration("")
	if !assert.Nil(t, err, "get configuration") {
		return
	}
	assert.Equal(t, wd, options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(wd, defaultBidFile), options.BidFile, "bid file")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := getConfiguration(filepath.Join(dir, "missing.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	tests := []struct {
		text    string
		invalid bool
	}{
		{`return { duplicates = "sometimes" }`, true},
		{`return { columns = { title = 1, bid_id = 1, amount = 4, fund = 8 } }`, true},
		{`return { columns = { title = -1, bid_id = 1, amount = 4, fund = 8 } }`, true},
		{`return { bid_file = "" }`, true},
		{`return { data_directory = "" }`, false},
		{`return { data_directory = "no-such-directory" }`, false},
		{`return { logging = { file = "sub/bids.log" } }`, false},
		{`return 42`, false},
		{`syntax error here`, false},
	}

	for i, test := range tests {
		fileName := writeFile(t, dir, "bidtree.conf", test.text)
		_, err := getConfiguration(fileName)
		if assert.NotNil(t, err, "%d: expected error for: %s", i, test.text) {
			assert.Equal(t, test.invalid, fault.IsErrInvalid(err), "%d: invalid class: %s", i, err)
		}
	}
}

func TestSetBidFile(t *testing.T) {
	options := &Configuration{}

	err := options.setBidFile("")
	assert.Equal(t, fault.ErrMissingBidFile, err, "blank name")

	wd, err := os.Getwd()
	assert.Nil(t, err, "getwd")

	err = options.setBidFile("data/../bids.csv")
	assert.Nil(t, err, "relative name")
	assert.Equal(t, filepath.Join(wd, "bids.csv"), options.BidFile, "absolute name")
}
