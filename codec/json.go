// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// JSON - human readable encoding, useful when records are inspected
// with external tools
type JSON struct{}

// Marshal - encode v
func (JSON) Marshal(v interface{}) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal - decode data into v which must be a pointer
//
// object members with no matching struct field are an error
func (JSON) Unmarshal(data []byte, v interface{}) error {
	decoder := gojson.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// Name - "json"
func (JSON) Name() string { return JSONName }
