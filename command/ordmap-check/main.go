// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordmap"
	"github.com/bitmark-inc/ordmap/verify"
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
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
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
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	quiet := len(options["quiet"]) > 0

	if len(arguments) > 0 && ("watch" == arguments[0] || "w" == arguments[0]) {
		watch(log, program, configurationFile, theConfiguration, quiet)
		return
	}

	if err := runCheck(theConfiguration, quiet); nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}
}

// build a map from the configuration and verify it
func runCheck(theConfiguration *Configuration, quiet bool) error {
	m, err := ordmap.NewFromConfiguration[int64, int64](theConfiguration.mapConfiguration())
	if nil != err {
		return fmt.Errorf("map setup error: %w", err)
	}

	report, err := verify.Run(logger.New("verify"), m, theConfiguration.Workload, theConfiguration.Seed)
	if nil != err {
		fault.Criticalf("verification failed: %s", err)
		return fmt.Errorf("verification failed: %w", err)
	}

	if !quiet {
		fmt.Printf("variant:     %s\n", m.Variant())
		fmt.Printf("replacement: %s\n", theConfiguration.Replacement)
		fmt.Printf("inserts:     %d\n", report.Inserts)
		fmt.Printf("updates:     %d\n", report.Updates)
		fmt.Printf("deletes:     %d\n", report.Deletes)
		fmt.Printf("misses:      %d\n", report.Misses)
		fmt.Printf("comparisons: %d\n", report.Comparisons)
		fmt.Printf("final size:  %d  height: %d\n", report.Size, report.Height)
		fmt.Printf("elapsed:     %s\n", report.Elapsed)
	}
	return nil
}

// run once, then again each time the configuration file is saved
//
// logging settings are fixed by the first read of the file
func watch(log *logger.L, program string, configurationFile string, theConfiguration *Configuration, quiet bool) {
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix))
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	run := true
	for {
		if run {
			if err := runCheck(theConfiguration, quiet); nil != err {
				log.Errorf("check: %s", err)
				if !quiet {
					fmt.Printf("%s: %s\n", program, err)
				}
			}
			if !quiet {
				fmt.Printf("\nwaiting for changes to: %q  (CTRL-C to stop)\n", configurationFile)
			}
		}

		select {
		case <-watcher.change:
			c, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("configuration: %q  error: %s", configurationFile, err)
				if !quiet {
					fmt.Printf("%s: configuration error: %s\n", program, err)
				}
				run = false
				continue
			}
			log.Infof("configuration: %q  reloaded", configurationFile)
			theConfiguration = c
			run = true

		case <-watcher.remove:
			log.Info("configuration file removed")
			return

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			return
		}
	}
}
