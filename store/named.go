// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"iter"

	"github.com/bitmark-inc/hivebox/codec"
	"github.com/bitmark-inc/hivebox/engine"
)

// Named - heterogeneous records under caller chosen keys
//
// the value type is picked on each call instead of being fixed for the
// store; Named is the backing store for singletons
type Named struct {
	handle engine.Handle
	codec  codec.Codec
}

// NewNamed - wrap an open handle, a nil codec selects codec.Default
func NewNamed(handle engine.Handle, c codec.Codec) *Named {
	if nil == c {
		c = codec.Default
	}
	return &Named{
		handle: handle,
		codec:  c,
	}
}

// Handle - the underlying engine handle
func (n *Named) Handle() engine.Handle {
	return n.handle
}

// Encode - serialise v with this store's codec
func (n *Named) Encode(v interface{}) ([]byte, error) {
	return codec.Encode(n.codec, v)
}

// SetBytes - store an already encoded value
//
// the caller must ensure raw is a valid encoding of the type that will
// later be read from key
func (n *Named) SetBytes(key []byte, raw []byte) error {
	return n.handle.Put(key, raw)
}

// GetBytes - the raw record at key
func (n *Named) GetBytes(key []byte) ([]byte, error) {
	return n.handle.Get(key)
}

// Delete - remove the record at key, absence is not an error
func (n *Named) Delete(key []byte) error {
	return n.handle.Delete(key)
}

// Get - read the record at key as a T
func Get[T any](n *Named, key []byte) (T, error) {
	return get[T](n.handle, n.codec, key)
}

// Set - encode value and store it under key
func Set[T any](n *Named, key []byte, value T) error {
	return put(n.handle, n.codec, key, value)
}

// Scan - every record that decodes as a T, in key order
func Scan[T any](n *Named) iter.Seq[T] {
	return values(scan[T](n.handle, n.codec))
}

// ScanWithKeys - as Scan, also yielding keys
//
// keys of records that fail to decode are not reported
func ScanWithKeys[T any](n *Named) iter.Seq2[[]byte, T] {
	return scan[T](n.handle, n.codec)
}
