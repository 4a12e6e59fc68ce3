// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - typed access to an engine handle
//
// Typed[V] fixes one value type for a handle and adds dedup access
// where a record's key is derived from the value's identity (see
// package identity).  Named leaves the type to each call and is used
// for singletons and other heterogeneous records.
//
// Every boundary crossing goes through the codec.  Errors:
//
//   fault.ErrNotFound   - no record at the key, an expected outcome
//   fault.CodecError    - value would not encode or record would not decode
//   fault.EngineError   - the handle failed
//
// Scans are the exception: a record that does not decode is skipped,
// so one foreign or corrupt record never aborts a scan.
package store
