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

// Typed - keyed storage of a single value type V
//
// several Typed stores may share one handle, but every record under
// that handle must then be a V
type Typed[V any] struct {
	handle engine.Handle
	codec  codec.Codec
}

// NewTyped - bind V to an open handle, a nil codec selects codec.Default
func NewTyped[V any](handle engine.Handle, c codec.Codec) *Typed[V] {
	if nil == c {
		c = codec.Default
	}
	return &Typed[V]{
		handle: handle,
		codec:  c,
	}
}

// OpenTyped - open or create a durable database at path
func OpenTyped[V any](path string, options *engine.Options) (*Typed[V], error) {
	db, err := engine.Open(path, options)
	if nil != err {
		return nil, err
	}
	return NewTyped[V](db, nil), nil
}

// OpenTransientTyped - open a private in-memory database
func OpenTransientTyped[V any](options *engine.Options) (*Typed[V], error) {
	db, err := engine.OpenTransient(options)
	if nil != err {
		return nil, err
	}
	return NewTyped[V](db, nil), nil
}

// Handle - the underlying engine handle
func (s *Typed[V]) Handle() engine.Handle {
	return s.handle
}

// Named - an untyped view over the same handle and codec
func (s *Typed[V]) Named() *Named {
	return NewNamed(s.handle, s.codec)
}

// Put - encode value and store it under key, replacing any existing record
func (s *Typed[V]) Put(key []byte, value V) error {
	return put(s.handle, s.codec, key, value)
}

// Get - read and decode the record at key
//
// fault.ErrNotFound if there is no record, a fault.CodecError if the
// record is not a V
func (s *Typed[V]) Get(key []byte) (V, error) {
	return get[V](s.handle, s.codec, key)
}

// Delete - remove the record at key, absence is not an error
func (s *Typed[V]) Delete(key []byte) error {
	return s.handle.Delete(key)
}

// Scan - every decodable record in key order
//
// records that are not a V are skipped without error; each call
// returns a fresh sequence
func (s *Typed[V]) Scan() iter.Seq[V] {
	return values(scan[V](s.handle, s.codec))
}

// ScanWithKeys - as Scan, also yielding each record's key
func (s *Typed[V]) ScanWithKeys() iter.Seq2[[]byte, V] {
	return scan[V](s.handle, s.codec)
}

// CollectAll - Scan materialised into a slice
func (s *Typed[V]) CollectAll() []V {
	result := make([]V, 0)
	for v := range s.Scan() {
		result = append(result, v)
	}
	return result
}

// Count - number of decodable records
func (s *Typed[V]) Count() int {
	n := 0
	for range s.Scan() {
		n += 1
	}
	return n
}

// Close - close the underlying handle
func (s *Typed[V]) Close() error {
	return s.handle.Close()
}
