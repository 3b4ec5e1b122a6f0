// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/referral/commission"
	"github.com/bitmark-inc/referral/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "referral.leveldb"

	defaultOutputDirectory = "."
	defaultCommittedFile   = "output.csv"
	defaultStagedFile      = "output_cache.csv"

	defaultThreshold = 5

	defaultLogDirectory = "log"
	defaultLogFile      = "referral.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"storage":         "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB person store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// OutputType - where snapshots are written
type OutputType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Committed string `gluamapper:"committed" json:"committed"`
	Staged    string `gluamapper:"staged" json:"staged"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Database        DatabaseType         `gluamapper:"database" json:"database"`
	Threshold       uint64               `gluamapper:"threshold" json:"threshold"`
	Percentages     commission.Table     `gluamapper:"percentages" json:"percentages"`
	ContinueOnError bool                 `gluamapper:"continue_on_error" json:"continue_on_error"`
	Output          OutputType           `gluamapper:"output" json:"output"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Threshold:     defaultThreshold,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Output: OutputType{
			Directory: defaultOutputDirectory,
			Committed: defaultCommittedFile,
			Staged:    defaultStagedFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.Percentages.Validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrInvalidDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = filepath.Clean(dataDirectory) // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrInvalidDirectory)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Output.Committed, &options.Output.Directory},
		{&options.Output.Staged, &options.Output.Directory},
		{&options.Logging.File, nil},
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Output.Directory,
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = ensureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("file: %q: %w", *f[0], fault.ErrInvalidFileName)
		}
	}

	// done
	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
