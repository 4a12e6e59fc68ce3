// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/hivebox/fault"
)

// Cursor - pages through the key space in ascending order
type Cursor struct {
	database *Database
	maxRange ldb_util.Range
}

// NewCursor - initialise a cursor to the start of the key space
func (d *Database) NewCursor() *Cursor {
	return &Cursor{
		database: d,
		maxRange: ldb_util.Range{
			Start: nil, // Start of key range, included in the range
			Limit: nil, // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *Cursor) Seek(key []byte) *Cursor {
	start := make([]byte, len(key))
	copy(start, key)
	cursor.maxRange.Start = start
	return cursor
}

// Prefix - restrict the cursor to keys starting with prefix and move
// to the first of them
func (cursor *Cursor) Prefix(prefix []byte) *Cursor {
	r := ldb_util.BytesPrefix(prefix)
	cursor.maxRange = *r
	return cursor
}

// Fetch - return up to count elements and advance the cursor past them
func (cursor *Cursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.database.iterateRange(&cursor.maxRange, func(key []byte, value []byte) error {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		if len(results) >= count {
			return errStop
		}
		return nil
	})

	if n := len(results); n > 0 {
		// smallest key strictly greater than the last one returned
		last := results[n-1].Key
		next := make([]byte, len(last)+1)
		copy(next, last)
		cursor.maxRange.Start = next
	}
	return results, err
}

// Map - run a function on all elements from the cursor position
func (cursor *Cursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}
	return cursor.database.iterateRange(&cursor.maxRange, f)
}
