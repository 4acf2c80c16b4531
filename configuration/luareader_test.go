// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bidtree/configuration"
	"github.com/bitmark-inc/bidtree/fault"
)

type columnsType struct {
	Title int `gluamapper:"title"`
	BidId int `gluamapper:"bid_id"`
}

type testConfiguration struct {
	BidFile    string            `gluamapper:"bid_file"`
	BidId      string            `gluamapper:"bid_id"`
	Duplicates string            `gluamapper:"duplicates"`
	Watch      bool              `gluamapper:"watch"`
	Columns    columnsType       `gluamapper:"columns"`
	Levels     map[string]string `gluamapper:"levels"`
}

func writeConfig(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write config error: %s", err)
	}
	return fileName
}

func TestParse(t *testing.T) {
	fileName := writeConfig(t, `
local M = {}
M.bid_file = "sales.csv"
M.bid_id = "98" .. "109"
M.watch = true
M.columns = { bid_id = 3 }
M.levels = { DEFAULT = "info", loader = "debug" }
-- arg[0] holds this file name
M.duplicates = arg[0] ~= nil and "allow" or "reject"
return M
`)

	config := &testConfiguration{
		BidFile:    "default.csv",
		Duplicates: "reject",
		Columns:    columnsType{Title: 7, BidId: 1},
	}
	err := configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err)
	assert.Equal(t, "sales.csv", config.BidFile)
	assert.Equal(t, "98109", config.BidId)
	assert.Equal(t, "allow", config.Duplicates)
	assert.True(t, config.Watch)
	assert.Equal(t, 3, config.Columns.BidId)
	assert.Equal(t, 7, config.Columns.Title, "default is kept")
	assert.Equal(t, "debug", config.Levels["loader"])
}

func TestParseErrors(t *testing.T) {
	config := &testConfiguration{}

	err := configuration.ParseConfigurationFile(writeConfig(t, "return {"), config)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(writeConfig(t, "return 42"), config)
	assert.NotNil(t, err, "not a table")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), config)
	assert.NotNil(t, err, "missing file")

	err = configuration.ParseConfigurationFile(writeConfig(t, "return {}"), *config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}
