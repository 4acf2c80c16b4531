// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bidtree/bst"
	"github.com/bitmark-inc/bidtree/loader"
)

func TestSetupCommands(t *testing.T) {
	w := &bytes.Buffer{}
	assert.True(t, processSetupCommand(w, "bidtree", []string{"version"}), "version")
	assert.Equal(t, version+"\n", w.String(), "version output")

	w.Reset()
	assert.True(t, processSetupCommand(w, "bidtree", nil), "default is help")
	assert.Contains(t, w.String(), "usage: bidtree ", "usage")
	assert.Contains(t, w.String(), "remove ID", "remove listed")

	w.Reset()
	assert.False(t, processSetupCommand(w, "bidtree", []string{"list"}), "data command")
	assert.Equal(t, "", w.String(), "no output")
}

func TestDataCommands(t *testing.T) {
	log := setupTestLogger(t)
	defer teardownTestLogger()

	options := &Configuration{
		BidFile: writeFile(t, t.TempDir(), "bids.csv", sample),
		BidId:   "98109",
		Columns: loader.DefaultColumns,
		policy:  bst.RejectDuplicates,
	}

	tests := []struct {
		arguments []string
		expected  string
	}{
		{
			[]string{"list"},
			"97990: Hoover Steam Vac | 27.00 | General Fund\n" +
				"98109: Table | 1250.50 | Enterprise\n" +
				"98223: Chairs, Set of 4 | 5.00 | General Fund\n",
		},
		{[]string{"find"}, "98109: Table | 1250.50 | Enterprise\n"},
		{[]string{"f", "98223"}, "98223: Chairs, Set of 4 | 5.00 | General Fund\n"},
		{
			[]string{"remove", "97990"},
			"98109: Table | 1250.50 | Enterprise\n" +
				"98223: Chairs, Set of 4 | 5.00 | General Fund\n",
		},
		{[]string{"count"}, "3\n"},
		{[]string{"check"}, "ok: 3 bids  height: 3\n"},
		{
			[]string{"print"},
			"              /------+ \"98223\"\n" +
				"       /------+ \"98109\"\n" +
				"|------+ \"97990\"\n",
		},
	}

	for i, test := range tests {
		w := &bytes.Buffer{}
		assert.True(t, processDataCommand(w, log, test.arguments, options), "%d: %v", i, test.arguments)
		assert.Equal(t, test.expected, w.String(), "%d: %v", i, test.arguments)
	}

	w := &bytes.Buffer{}
	assert.False(t, processDataCommand(w, log, nil, options), "no command runs the menu")
}
