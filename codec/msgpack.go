// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	ugorji "github.com/ugorji/go/codec"
)

// Msgpack - compact binary, self-describing encoding
//
// structs are written as maps keyed by field name so fields may be
// added to a type without invalidating existing records; a record
// carrying a field the target type lacks is rejected, which keeps one
// struct type from decoding as another
type Msgpack struct {
	handle *ugorji.MsgpackHandle
}

// NewMsgpack - create a msgpack codec
func NewMsgpack() *Msgpack {
	h := &ugorji.MsgpackHandle{
		WriteExt: true, // distinguish str from bin
	}
	h.ErrorIfNoField = true
	return &Msgpack{
		handle: h,
	}
}

// Marshal - encode v
func (m *Msgpack) Marshal(v interface{}) ([]byte, error) {
	var buffer []byte
	err := ugorji.NewEncoderBytes(&buffer, m.handle).Encode(v)
	if nil != err {
		return nil, err
	}
	return buffer, nil
}

// Unmarshal - decode data into v which must be a pointer
func (m *Msgpack) Unmarshal(data []byte, v interface{}) error {
	return ugorji.NewDecoderBytes(data, m.handle).Decode(v)
}

// Name - "msgpack"
func (*Msgpack) Name() string { return MsgpackName }
