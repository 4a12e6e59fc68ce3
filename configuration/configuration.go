// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/hivebox/codec"
	"github.com/bitmark-inc/hivebox/engine"
	"github.com/bitmark-inc/hivebox/fault"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "hivebox.leveldb"
	defaultStateName         = "hivebox-state.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "hivebox.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// DatabaseType - where and how records are kept
type DatabaseType struct {
	Directory   string `gluamapper:"directory" json:"directory"`
	Name        string `gluamapper:"name" json:"name"`
	State       string `gluamapper:"state" json:"state"`
	Transient   bool   `gluamapper:"transient" json:"transient"`
	Codec       string `gluamapper:"codec" json:"codec"`
	ReadOnly    bool   `gluamapper:"read_only" json:"read_only"`
	CacheExpiry string `gluamapper:"cache_expiry" json:"cache_expiry"`
}

// Configuration - contents of a hivebox configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, default and verify a configuration file
//
// relative paths are taken from the data directory, which must exist;
// the log and database directories are created if missing
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
			Name:      defaultDatabaseName,
			State:     defaultStateName,
			Codec:     codec.MsgpackName,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    maps.Clone(defaultLogLevels),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if _, err := codec.ByName(options.Database.Codec); nil != err {
		return nil, fmt.Errorf("codec: %q: %w", options.Database.Codec, err)
	}
	if _, err := options.cacheExpiry(); nil != err {
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

	if "" != options.PidFile {
		options.PidFile = ensureAbsolute(options.DataDirectory, options.PidFile)
	}

	// file names must not carry a directory part
	if options.Database.State == options.Database.Name {
		return nil, fmt.Errorf("database: state %q must differ from name", options.Database.State)
	}
	for _, f := range []string{options.Logging.File, options.Database.Name, options.Database.State} {
		switch filepath.Dir(f) {
		case "", ".":
		default:
			return nil, fmt.Errorf("files: %q is not plain name", f)
		}
	}

	directories := []*string{&options.Logging.Directory}
	if !options.Database.Transient {
		directories = append(directories, &options.Database.Directory)
	}
	for _, d := range directories {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// DatabasePath - full path of the durable database, empty if transient
func (c *Configuration) DatabasePath() string {
	if c.Database.Transient {
		return ""
	}
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// StatePath - full path of the program's own state database, empty
// if transient
//
// it sits beside the record database so that nothing the program
// keeps for itself is mixed into the records it inspects
func (c *Configuration) StatePath() string {
	if c.Database.Transient {
		return ""
	}
	return filepath.Join(c.Database.Directory, c.Database.State)
}

// Codec - the record codec selected by name
func (c *Configuration) Codec() (codec.Codec, error) {
	return codec.ByName(c.Database.Codec)
}

// EngineOptions - settings for engine.Open
func (c *Configuration) EngineOptions() (*engine.Options, error) {
	expiry, err := c.cacheExpiry()
	if nil != err {
		return nil, err
	}
	return &engine.Options{
		ReadOnly:    c.Database.ReadOnly,
		CacheExpiry: expiry,
	}, nil
}

// blank selects the engine default
func (c *Configuration) cacheExpiry() (time.Duration, error) {
	if "" == c.Database.CacheExpiry {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Database.CacheExpiry)
	if nil != err || d < 0 {
		return 0, fault.ErrInvalidCacheExpiry
	}
	return d, nil
}

// prefix directory to a relative path
func ensureAbsolute(directory string, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(directory, path)
	}
	return filepath.Clean(path)
}
