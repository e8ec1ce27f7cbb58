// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordmap/bst"
	"github.com/bitmark-inc/ordmap/configuration"
	"github.com/bitmark-inc/ordmap/ordmap"
	"github.com/bitmark-inc/ordmap/verify"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultLogDirectory = "log"
	defaultLogFile      = "ordmap-check.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultOperations    = 100000
	defaultKeySpace      = 5000
	defaultDeletePercent = 40
	defaultCompareEvery  = 1000
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"verify":          "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Variant       string               `gluamapper:"variant" json:"variant"`
	Replacement   string               `gluamapper:"replacement" json:"replacement"`
	Seed          uint64               `gluamapper:"seed" json:"seed"`
	Workload      verify.Workload      `gluamapper:"workload" json:"workload"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Variant:       ordmap.AVL.String(),
		Replacement:   bst.SuccessorName,
		Seed:          0,

		Workload: verify.Workload{
			Operations:    defaultOperations,
			KeySpace:      defaultKeySpace,
			DeletePercent: defaultDeletePercent,
			CompareEvery:  defaultCompareEvery,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    maps.Clone(defaultLogLevels), // decoding writes into this map
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// reject names early so a bad file fails before logging starts
	if _, err := ordmap.ParseVariant(options.Variant); nil != err {
		return nil, fmt.Errorf("variant: %q: %w", options.Variant, err)
	}
	if _, err := bst.NewChooser(options.Replacement, options.Seed); nil != err {
		return nil, fmt.Errorf("replacement: %q: %w", options.Replacement, err)
	}
	if err := options.Workload.Validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// the log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("file: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// the section used to build the map
func (c *Configuration) mapConfiguration() *ordmap.Configuration {
	return &ordmap.Configuration{
		Variant:     c.Variant,
		Replacement: c.Replacement,
		Seed:        c.Seed,
	}
}
