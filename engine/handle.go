// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/hivebox/fault"
	"github.com/bitmark-inc/logger"
)

// Handle - an opened, ordered byte-key store
//
// implementations must be safe for concurrent use
type Handle interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Put(key []byte, value []byte) error
	Delete(key []byte) error
	Iterate(f func(key []byte, value []byte) bool) error
	Path() string
	Close() error
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Database - LevelDB backed Handle
type Database struct {
	sync.RWMutex // protects db against Close

	writeLock sync.Mutex // orders cache fills against writes
	log       *logger.L
	path      string
	readOnly  bool
	db        *leveldb.DB
	cache     *readCache
}

// Path - location of the database, empty for a transient database
func (d *Database) Path() string {
	return d.path
}

// Get - read the value for a key
//
// a value found in the database is kept in the read cache until it
// expires or the key is written; returns fault.ErrNotFound if the key
// does not exist
func (d *Database) Get(key []byte) ([]byte, error) {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return nil, fault.Engine("get", fault.ErrDatabaseClosed)
	}

	if value, found := d.cache.get(key); found {
		return value, nil
	}

	// a miss is filled under the write lock so a concurrent write
	// cannot be overtaken by the value read before it
	d.writeLock.Lock()
	defer d.writeLock.Unlock()

	if value, found := d.cache.get(key); found {
		return value, nil
	}

	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrNotFound
	}
	if nil != err {
		d.log.Errorf("get: %x  error: %s", key, err)
		return nil, fault.Engine("get", err)
	}
	d.cache.set(key, value)
	return value, nil
}

// Has - check if a key exists
func (d *Database) Has(key []byte) (bool, error) {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return false, fault.Engine("has", fault.ErrDatabaseClosed)
	}

	if _, found := d.cache.get(key); found {
		return true, nil
	}

	found, err := d.db.Has(key, nil)
	if nil != err {
		d.log.Errorf("has: %x  error: %s", key, err)
		return false, fault.Engine("has", err)
	}
	return found, nil
}

// Put - store a key/value bytes pair, last write for a key wins
func (d *Database) Put(key []byte, value []byte) error {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return fault.Engine("put", fault.ErrDatabaseClosed)
	}
	if d.readOnly {
		return fault.Engine("put", fault.ErrReadOnly)
	}

	d.writeLock.Lock()
	defer d.writeLock.Unlock()

	err := d.db.Put(key, value, nil)
	if nil != err {
		d.log.Errorf("put: %x  error: %s", key, err)
		return fault.Engine("put", err)
	}
	d.cache.remove(key)
	return nil
}

// Delete - remove a key, absence is not an error
func (d *Database) Delete(key []byte) error {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return fault.Engine("delete", fault.ErrDatabaseClosed)
	}
	if d.readOnly {
		return fault.Engine("delete", fault.ErrReadOnly)
	}

	d.writeLock.Lock()
	defer d.writeLock.Unlock()

	err := d.db.Delete(key, nil)
	if nil != err {
		d.log.Errorf("delete: %x  error: %s", key, err)
		return fault.Engine("delete", err)
	}
	d.cache.remove(key)
	return nil
}

// Iterate - call f for every record in ascending key order until f
// returns false
//
// iteration runs over a snapshot so f may write to the database; the
// key and value passed to f are copies
func (d *Database) Iterate(f func(key []byte, value []byte) bool) error {
	return d.iterateRange(nil, func(key []byte, value []byte) error {
		if !f(key, value) {
			return errStop
		}
		return nil
	})
}

// private sentinel to end an iteration early
var errStop = fault.ProcessError("stop iteration")

// walk a key range on a snapshot, copying each element
func (d *Database) iterateRange(searchRange *ldb_util.Range, f func(key []byte, value []byte) error) error {
	iter, snapshot, err := d.newIterator(searchRange)
	if nil != err {
		return err
	}
	defer snapshot.Release()
	defer iter.Release()

iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key))
		copy(dataKey, key)

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iterErr := iter.Error()

	if errStop == err {
		err = nil
	}
	if nil == err && nil != iterErr {
		d.log.Errorf("iterate: error: %s", iterErr)
		err = fault.Engine("iterate", iterErr)
	}
	return err
}

// the snapshot must be released after the iterator
func (d *Database) newIterator(searchRange *ldb_util.Range) (iterator.Iterator, *leveldb.Snapshot, error) {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return nil, nil, fault.Engine("iterate", fault.ErrDatabaseClosed)
	}

	snapshot, err := d.db.GetSnapshot()
	if nil != err {
		return nil, nil, fault.Engine("snapshot", err)
	}
	return snapshot.NewIterator(searchRange, nil), snapshot, nil
}

// Close - release the database, safe to call more than once
func (d *Database) Close() error {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return nil
	}

	err := d.db.Close()
	d.db = nil
	d.cache.clear()

	if "" == d.path {
		d.log.Info("transient database closed")
	} else {
		d.log.Infof("closed: %q", d.path)
	}
	d.log.Flush()

	return fault.Engine("close", err)
}
