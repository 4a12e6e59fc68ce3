// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrDatabaseClosed        = ProcessError("database is closed")
	ErrInvalidCacheExpiry    = InvalidError("cache expiry is invalid")
	ErrInvalidCount          = InvalidError("count is invalid")
	ErrInvalidCursor         = InvalidError("cursor is invalid")
	ErrInvalidKey            = InvalidError("key is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingDatabasePath   = InvalidError("database path is required")
	ErrNotFound              = NotFoundError("record not found")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrReadOnly              = ProcessError("database is read only")
	ErrUnknownCodec          = InvalidError("codec is not known")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// EngineError - failure inside the key/value engine
//
// I/O, corruption and handle level failures; not retried here
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string { return fmt.Sprintf("engine: %s: %v", e.Op, e.Err) }
func (e *EngineError) Unwrap() error { return e.Err }

// CodecError - a value could not be encoded or a record could not be
// decoded into the requested type
type CodecError struct {
	Op  string
	Err error
}

func (e *CodecError) Error() string { return fmt.Sprintf("codec: %s: %v", e.Op, e.Err) }
func (e *CodecError) Unwrap() error { return e.Err }

// Engine - wrap an engine failure, nil stays nil
func Engine(op string, err error) error {
	if nil == err {
		return nil
	}
	return &EngineError{Op: op, Err: err}
}

// Codec - wrap a codec failure, nil stays nil
func Codec(op string, err error) error {
	if nil == err {
		return nil
	}
	return &CodecError{Op: op, Err: err}
}

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrEngine(e error) bool   { var x *EngineError; return errors.As(e, &x) }
func IsErrCodec(e error) bool    { var x *CodecError; return errors.As(e, &x) }
