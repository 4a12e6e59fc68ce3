// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package singleton

import (
	"fmt"

	"github.com/bitmark-inc/hivebox/fault"
	"github.com/bitmark-inc/hivebox/store"
	"github.com/bitmark-inc/logger"
)

// Named - a type that supplies its own record key
type Named interface {
	StoreName() []byte
}

// Initialise - reconcile a persisted record with a default value
//
// with no store the singleton is memory only and holds def.  Otherwise
// an existing record at key is adopted and def is discarded; when there
// is no usable record def is written to key and held.  An engine
// failure while looking for the record, or while writing def, is
// returned.
func Initialise[V any](named *store.Named, key []byte, def V) (*Singleton[V], error) {
	s := &Singleton[V]{
		log:   logger.New("singleton"),
		named: named,
		key:   append([]byte{}, key...),
		state: Uninitialised,
	}

	if nil == named {
		s.value = def
		s.state = Ready
		s.log.Debugf("%q: memory only", s.key)
		return s, nil
	}

	value, err := store.Get[V](named, s.key)
	switch {
	case nil == err:
		s.state = Adopting
		s.log.Infof("%q: adopt persisted value", s.key)
		s.value = value

	case fault.IsErrNotFound(err), fault.IsErrCodec(err):
		s.state = Seeding
		if fault.IsErrCodec(err) {
			s.log.Warnf("%q: persisted value unreadable: %s", s.key, err)
		}
		s.log.Infof("%q: seed default value", s.key)

		raw, err := named.Encode(def)
		if nil != err {
			return nil, err
		}
		if err := named.SetBytes(s.key, raw); nil != err {
			s.log.Errorf("%q: seed error: %s", s.key, err)
			return nil, err
		}
		s.value = def

	default:
		s.log.Errorf("%q: read error: %s", s.key, err)
		return nil, err
	}

	s.state = Ready
	return s, nil
}

// InitialiseNamed - Initialise using the value type's own key
func InitialiseNamed[V Named](named *store.Named, def V) (*Singleton[V], error) {
	return Initialise(named, def.StoreName(), def)
}

// MustInitialise - Initialise for process start up, panics on failure
func MustInitialise[V any](named *store.Named, key []byte, def V) *Singleton[V] {
	s, err := Initialise(named, key, def)
	fault.PanicIfError(fmt.Sprintf("singleton: %q initialise", key), err)
	return s
}

// New - write value to key unconditionally and hold it
func New[V any](named *store.Named, key []byte, value V) (*Singleton[V], error) {
	s := &Singleton[V]{
		log:   logger.New("singleton"),
		named: named,
		key:   append([]byte{}, key...),
		state: Seeding,
	}
	if err := s.Set(value); nil != err {
		return nil, err
	}
	s.state = Ready
	return s, nil
}

// NewNamed - New using the value type's own key
func NewNamed[V Named](named *store.Named, value V) (*Singleton[V], error) {
	return New(named, value.StoreName(), value)
}

// Load - adopt the record at key, never writing
//
// fault.ErrNotFound if there is no record
func Load[V any](named *store.Named, key []byte) (*Singleton[V], error) {
	value, err := store.Get[V](named, key)
	if nil != err {
		return nil, err
	}
	return &Singleton[V]{
		log:   logger.New("singleton"),
		named: named,
		key:   append([]byte{}, key...),
		state: Ready,
		value: value,
	}, nil
}

// LoadNamed - Load using the value type's own key
func LoadNamed[V Named](named *store.Named) (*Singleton[V], error) {
	var zero V
	return Load[V](named, zero.StoreName())
}
