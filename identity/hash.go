// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// KeySize - length of a dedup key in bytes
const KeySize = 8

// Hashable - a value that can describe its own identity
//
// only fields that take part in identity are written, so two values
// differing only in other fields produce the same key
type Hashable interface {
	HashIdentity(h *Hasher)
}

// Hasher - accumulates identity fields into a 64 bit digest
type Hasher struct {
	h      hash.Hash
	buffer [binary.MaxVarintLen64]byte
}

// NewHasher - create an empty hasher
func NewHasher() *Hasher {
	h, err := blake2b.New(KeySize, nil)
	if nil != err {
		// only fails for an invalid size or key
		panic(err)
	}
	return &Hasher{
		h: h,
	}
}

// Bytes - add a length prefixed byte field
func (h *Hasher) Bytes(b []byte) *Hasher {
	h.Uint64(uint64(len(b)))
	h.h.Write(b)
	return h
}

// String - add a length prefixed string field
func (h *Hasher) String(s string) *Hasher {
	return h.Bytes([]byte(s))
}

// Uint64 - add an unsigned integer field
func (h *Hasher) Uint64(n uint64) *Hasher {
	binary.LittleEndian.PutUint64(h.buffer[:8], n)
	h.h.Write(h.buffer[:8])
	return h
}

// Int64 - add a signed integer field
func (h *Hasher) Int64(n int64) *Hasher {
	return h.Uint64(uint64(n))
}

// Bool - add a boolean field
func (h *Hasher) Bool(b bool) *Hasher {
	if b {
		h.h.Write([]byte{1})
	} else {
		h.h.Write([]byte{0})
	}
	return h
}

// Sum64 - the digest of everything written so far
func (h *Hasher) Sum64() uint64 {
	return binary.LittleEndian.Uint64(h.h.Sum(nil))
}

// Sum64 - identity digest of a value
func Sum64(v Hashable) uint64 {
	h := NewHasher()
	v.HashIdentity(h)
	return h.Sum64()
}

// Key - dedup key of a value: its identity digest as little endian bytes
func Key(v Hashable) []byte {
	key := make([]byte, KeySize)
	binary.LittleEndian.PutUint64(key, Sum64(v))
	return key
}
