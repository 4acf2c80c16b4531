// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
	logCategory    = "main"
)

const sample = `Auction Title,Auction ID,Department,Close Date,Winning Bid,Pay Date,Pay Amount,Dept,Fund
Hoover Steam Vac,97990,General Services,11/9/2016,$27.00,11/16/2016,$27.00,,General Fund
Table,98109,Enterprise,11/14/2016,"$1,250.50",11/21/2016,,,Enterprise
"Chairs, Set of 4",98223,General Services,11/14/2016,$5.00,,,,General Fund
`

func setupTestLogger(t *testing.T) *logger.L {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}
	return logger.New(logCategory)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// write a file into dir and return its name
func writeFile(t *testing.T, dir string, name string, text string) string {
	fileName := filepath.Join(dir, name)
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write file: %q  error: %s", fileName, err)
	}
	return fileName
}
