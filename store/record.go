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

func put(handle engine.Handle, c codec.Codec, key []byte, value interface{}) error {
	data, err := codec.Encode(c, value)
	if nil != err {
		return err
	}
	return handle.Put(key, data)
}

func get[T any](handle engine.Handle, c codec.Codec, key []byte) (T, error) {
	var value T
	data, err := handle.Get(key)
	if nil != err {
		return value, err
	}
	if err := codec.Decode(c, data, &value); nil != err {
		var zero T
		return zero, err
	}
	return value, nil
}

// best effort walk of the whole handle
//
// undecodable records are dropped along with their keys, and an engine
// failure part way through simply ends the sequence
func scan[T any](handle engine.Handle, c codec.Codec) iter.Seq2[[]byte, T] {
	return func(yield func([]byte, T) bool) {
		_ = handle.Iterate(func(key []byte, data []byte) bool {
			var value T
			if nil != c.Unmarshal(data, &value) {
				return true
			}
			return yield(key, value)
		})
	}
}

func values[T any](seq iter.Seq2[[]byte, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
