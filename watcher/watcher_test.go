// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bidtree/fault"
	"github.com/bitmark-inc/bidtree/watcher"
)

const (
	testingDirName = "testing"
	testFileName   = "bids.csv"
	waitTime       = 5 * time.Second
)

func setupTestLogger(t *testing.T) *logger.L {
	os.RemoveAll(testingDirName)
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
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}
	return logger.New("watcher")
}

func teardownTestLogger() {
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func createFile(t *testing.T, dir string) string {
	fileName := filepath.Join(dir, testFileName)
	if err := os.WriteFile(fileName, []byte("header\n"), 0600); nil != err {
		t.Fatalf("create file error: %s", err)
	}
	return fileName
}

func TestChangeAndRemove(t *testing.T) {
	log := setupTestLogger(t)
	defer teardownTestLogger()

	dir := t.TempDir()
	fileName := createFile(t, dir)
	other := filepath.Join(dir, "other.csv")

	w, err := watcher.New(fileName, log, 0)
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	defer w.Stop()
	assert.Nil(t, w.Start())
	assert.Equal(t, fault.ErrAlreadyInitialised, w.Start())

	// other files in the directory are ignored
	assert.Nil(t, os.WriteFile(other, []byte("x"), 0600))
	select {
	case <-w.Changed():
		t.Fatal("unexpected change event for another file")
	case <-time.After(200 * time.Millisecond):
	}

	f, err := os.OpenFile(fileName, os.O_APPEND|os.O_WRONLY, 0600)
	assert.Nil(t, err)
	_, err = f.WriteString("row\n")
	assert.Nil(t, err)
	f.Close()

	select {
	case <-w.Changed():
	case <-time.After(waitTime):
		t.Fatal("no change event")
	}

	assert.Nil(t, os.Remove(fileName))
	select {
	case <-w.Removed():
	case <-time.After(waitTime):
		t.Fatal("no remove event")
	}
}

func TestRateLimit(t *testing.T) {
	log := setupTestLogger(t)
	defer teardownTestLogger()

	fileName := createFile(t, t.TempDir())

	w, err := watcher.New(fileName, log, time.Hour)
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	defer w.Stop()
	assert.Nil(t, w.Start())

	assert.Nil(t, os.WriteFile(fileName, []byte("first\n"), 0600))
	select {
	case <-w.Changed():
	case <-time.After(waitTime):
		t.Fatal("no change event")
	}

	assert.Nil(t, os.WriteFile(fileName, []byte("second\n"), 0600))
	select {
	case <-w.Changed():
		t.Fatal("change inside the rate limit was delivered")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestNewErrors(t *testing.T) {
	log := setupTestLogger(t)
	defer teardownTestLogger()

	_, err := watcher.New(filepath.Join(t.TempDir(), "missing.csv"), log, 0)
	assert.True(t, os.IsNotExist(err))

	_, err = watcher.New(createFile(t, t.TempDir()), nil, 0)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err)
}

func TestStop(t *testing.T) {
	log := setupTestLogger(t)
	defer teardownTestLogger()

	fileName := createFile(t, t.TempDir())

	w, err := watcher.New(fileName, log, 0)
	assert.Nil(t, err)
	assert.Equal(t, fileName, w.FilePath())

	// stop without start must not block
	w.Stop()
	w.Stop()
	assert.Equal(t, fault.ErrWatcherStopped, w.Start())
}
