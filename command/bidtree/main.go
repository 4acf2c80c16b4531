// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bidtree/fault"
	"github.com/bitmark-inc/bidtree/watcher"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "bid-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "bid-id", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'b'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(os.Stdout, program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(os.Stdout, program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(os.Stdout, program, arguments) {
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides
	if n := len(options["bid-file"]); n > 0 {
		if err := theConfiguration.setBidFile(options["bid-file"][n-1]); nil != err {
			exitwithstatus.Message("%s: bid file error: %s", program, err)
		}
	}
	if n := len(options["bid-id"]); n > 0 {
		theConfiguration.BidId = options["bid-id"][n-1]
	}
	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err := theConfiguration.makeLogDirectory(); nil != err {
		exitwithstatus.Message("%s: log directory error: %s", program, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	// one shot commands
	if processDataCommand(os.Stdout, log, arguments, theConfiguration) {
		return
	}

	// ------------------
	// start of real main
	// ------------------

	s := newSession(log, theConfiguration, os.Stdin, os.Stdout)
	s.quiet = quiet

	if theConfiguration.Watch {
		w, err := watcher.New(theConfiguration.BidFile, logger.New("watcher"), theConfiguration.reloadInterval())
		if nil != err {
			fault.Criticalf("watcher initialise error: %s", err)
			exitwithstatus.Message("watcher initialise error: %s", err)
		}
		if err := w.Start(); nil != err {
			fault.Criticalf("watcher start error: %s", err)
			exitwithstatus.Message("watcher start error: %s", err)
		}
		defer w.Stop()
		s.watch = w
	}

	s.run()
}
