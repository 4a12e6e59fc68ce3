// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - the on-disk (or in-memory) ordered key/value store
//
// A Handle is a LevelDB database with synchronous get/put/delete and
// ordered iteration.  Keys are arbitrary bytes with no prefix added;
// iteration always yields records in ascending byte-key order, never
// in insertion order.
//
// Notes:
// 1. Open creates or opens a durable database directory
// 2. OpenTransient uses LevelDB's memory storage, nothing is retained
// 3. values returned by Get are held in an expiring read cache so that
//    repeated reads of a key do not touch LevelDB; any write to the key
//    drops its entry
// 4. Get returns fault.ErrNotFound for an absent key; every other
//    failure is a fault.EngineError
package engine
