// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hivebox/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrEngineOne   = fault.Engine("put", errors.New("disk full"))
	ErrCodecOne    = fault.Codec("decode", errors.New("bad tag"))
)

// test that the various error classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
		engine   bool
		codec    bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false, false},
		{ErrNotFoundTwo, false, false, true, false, false, false},
		{ErrProcessOne, false, false, false, true, false, false},
		{ErrProcessTwo, false, false, false, true, false, false},
		{ErrEngineOne, false, false, false, false, true, false},
		{ErrCodecOne, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrEngine(err) != e.engine {
			t.Errorf("%d: expected 'engine' == %v for err = %v", i, e.engine, err)
		}
		if fault.IsErrCodec(err) != e.codec {
			t.Errorf("%d: expected 'codec' == %v for err = %v", i, e.codec, err)
		}
	}
}

func TestWrappedClasses(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", fault.ErrNotFound)
	assert.True(t, fault.IsErrNotFound(wrapped), "wrapped not found")

	closed := fault.Engine("get", fault.ErrDatabaseClosed)
	assert.True(t, fault.IsErrEngine(closed), "closed is engine")
	assert.True(t, fault.IsErrProcess(closed), "closed is process")
	assert.True(t, errors.Is(closed, fault.ErrDatabaseClosed), "closed unwrap")
	assert.Equal(t, "engine: get: database is closed", closed.Error(), "wrong message")
}

func TestNilWrap(t *testing.T) {
	assert.Nil(t, fault.Engine("put", nil), "engine nil")
	assert.Nil(t, fault.Codec("encode", nil), "codec nil")
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("ok", nil) }, "nil error panicked")
	assert.Panics(t, func() { fault.PanicIfError("bad", ErrProcessOne) }, "error did not panic")
}
