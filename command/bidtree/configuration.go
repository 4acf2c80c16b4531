// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bidtree/bst"
	"github.com/bitmark-inc/bidtree/configuration"
	"github.com/bitmark-inc/bidtree/fault"
	"github.com/bitmark-inc/bidtree/loader"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory  = "." // same directory as the configuration file
	defaultBidFile        = "eBid_Monthly_Sales_Dec_2016.csv"
	defaultBidId          = "98109"
	defaultDuplicates     = "reject"
	defaultReloadInterval = 2 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "bidtree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// Configuration - decoded from the Lua configuration file
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	BidFile        string               `gluamapper:"bid_file" json:"bid_file"`
	BidId          string               `gluamapper:"bid_id" json:"bid_id"`
	Duplicates     string               `gluamapper:"duplicates" json:"duplicates"`
	Watch          bool                 `gluamapper:"watch" json:"watch"`
	ReloadInterval int                  `gluamapper:"reload_interval" json:"reload_interval"`
	Columns        loader.Columns       `gluamapper:"columns" json:"columns"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`

	policy bst.DuplicatePolicy
}

// will read decode and verify the configuration
//
// a blank file name selects the defaults with the current directory
// as the data directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	dataDirectory := ""
	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		dataDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if !configuration.FileExists(fileName) {
			return nil, fault.ErrNotFoundConfigFile
		}
		configurationFileName = fileName

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(configurationFileName)
	}

	// the decoder merges into the levels map so each call needs its own
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory:  defaultDataDirectory,
		BidFile:        defaultBidFile,
		BidId:          defaultBidId,
		Duplicates:     defaultDuplicates,
		Watch:          false,
		ReloadInterval: defaultReloadInterval,
		Columns:        loader.DefaultColumns,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if "" != configurationFileName {
		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	if err := options.validate(dataDirectory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// check values and expand all paths
func (options *Configuration) validate(dataDirectory string) error {

	policy, err := bst.ParseDuplicatePolicy(options.Duplicates)
	if nil != err {
		return fmt.Errorf("duplicates: %q  error: %w", options.Duplicates, err)
	}
	options.policy = policy
	options.Duplicates = policy.String()

	if err := options.Columns.Validate(); nil != err {
		return fmt.Errorf("columns: %+v  error: %w", options.Columns, err)
	}

	if options.ReloadInterval < 0 {
		options.ReloadInterval = 0
	}

	if "" == options.BidFile {
		return fault.ErrMissingBidFile
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = configuration.EnsureAbsolute(dataDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if !configuration.DirectoryExists(options.DataDirectory) {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.BidFile,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	// log file must be a simple name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	return nil
}

// setBidFile - override from the command line, relative to the current directory
func (options *Configuration) setBidFile(fileName string) error {
	if "" == fileName {
		return fault.ErrMissingBidFile
	}
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return err
	}
	options.BidFile = fileName
	return nil
}

// create the log directory if it does not already exist
func (options *Configuration) makeLogDirectory() error {
	return os.MkdirAll(options.Logging.Directory, 0700)
}

func (options *Configuration) duplicatePolicy() bst.DuplicatePolicy {
	return options.policy
}

func (options *Configuration) reloadInterval() time.Duration {
	return time.Duration(options.ReloadInterval) * time.Second
}
