// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - content derived keys
//
// A dedup key is the 64 bit BLAKE2b digest of a value's identity fields,
// stored as 8 little endian bytes.  The digest and its encoding are part
// of the on-disk format and must not change.
//
// The digest is not used for security.  Two distinct values whose
// identity fields collide share one key and overwrite each other.
package identity
