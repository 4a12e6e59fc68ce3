// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/hivebox/fault"
	"github.com/bitmark-inc/logger"
)

// access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Options - settings for opening a database, nil means defaults
type Options struct {
	ReadOnly    bool
	CacheExpiry time.Duration // zero selects the default
}

// Open - open or create a durable database at path
//
// a read-only database must already exist
func Open(path string, options *Options) (*Database, error) {
	if "" == path {
		return nil, fault.ErrMissingDatabasePath
	}
	if nil == options {
		options = &Options{}
	}

	log := logger.New("engine")

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: options.ReadOnly,
		ReadOnly:       options.ReadOnly,
	}

	db, err := leveldb.OpenFile(path, opt)
	if nil != err {
		log.Errorf("open: %q  error: %s", path, err)
		return nil, fault.Engine("open", err)
	}

	log.Infof("opened: %q  read only: %t", path, options.ReadOnly)

	return &Database{
		log:      log,
		path:     path,
		readOnly: options.ReadOnly,
		db:       db,
		cache:    newReadCache(options.CacheExpiry),
	}, nil
}

// OpenTransient - open a private in-memory database
//
// nothing is retained after Close
func OpenTransient(options *Options) (*Database, error) {
	if nil == options {
		options = &Options{}
	}

	log := logger.New("engine")

	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		log.Errorf("open transient error: %s", err)
		return nil, fault.Engine("open", err)
	}

	log.Debug("opened transient database")

	return &Database{
		log:   log,
		db:    db,
		cache: newReadCache(options.CacheExpiry),
	}, nil
}
