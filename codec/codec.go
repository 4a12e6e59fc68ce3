// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/bitmark-inc/hivebox/fault"
)

// Codec - encodes values to bytes and decodes them back
//
// implementations must be safe for concurrent use
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
	Name() string
}

// codec names as used in configuration files
const (
	MsgpackName = "msgpack"
	JSONName    = "json"
)

// Default - codec used when none is given
var Default Codec = NewMsgpack()

// ByName - return a built-in codec by its stable name
func ByName(name string) (Codec, error) {
	switch name {
	case "", MsgpackName:
		return Default, nil
	case JSONName:
		return JSON{}, nil
	default:
		return nil, fault.ErrUnknownCodec
	}
}

// Encode - marshal with c, wrapping any failure as a codec error
func Encode(c Codec, v interface{}) ([]byte, error) {
	data, err := c.Marshal(v)
	if nil != err {
		return nil, fault.Codec(c.Name()+" encode", err)
	}
	return data, nil
}

// Decode - unmarshal with c, wrapping any failure as a codec error
func Decode(c Codec, data []byte, v interface{}) error {
	return fault.Codec(c.Name()+" decode", c.Unmarshal(data, v))
}
