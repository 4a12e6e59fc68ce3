// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package singleton

import (
	"sync"

	"github.com/bitmark-inc/hivebox/codec"
	"github.com/bitmark-inc/hivebox/store"
	"github.com/bitmark-inc/logger"
)

// Singleton - an in-memory value kept equal to one optional record
type Singleton[V any] struct {
	sync.RWMutex // guards value

	update sync.Mutex // one writer at a time, readers are not blocked
	log    *logger.L
	named  *store.Named
	key    []byte
	state  State
	value  V
}

// Read - snapshot of the current value
//
// any number of readers may run together
func (s *Singleton[V]) Read() V {
	s.RLock()
	defer s.RUnlock()
	return s.value
}

// View - call f with the current value under the shared lock
//
// f must not call Set or Update
func (s *Singleton[V]) View(f func(value V)) {
	s.RLock()
	defer s.RUnlock()
	f(s.value)
}

// Set - persist value, then make it the in-memory value
//
// on failure the in-memory value is unchanged; a crash between the two
// steps can only leave the record ahead of memory, and that record is
// what the next start adopts
func (s *Singleton[V]) Set(value V) error {
	s.update.Lock()
	defer s.update.Unlock()

	return s.commit(value)
}

// Update - replace the value with f(current) as one Set
//
// concurrent updates are applied one after another so none is lost.
// f runs holding the update lock and may call Read or View but must not
// call Set or Update
func (s *Singleton[V]) Update(f func(current V) V) error {
	s.update.Lock()
	defer s.update.Unlock()

	return s.commit(f(s.Read()))
}

// must hold the update lock
func (s *Singleton[V]) commit(value V) error {
	if nil == s.named {
		if _, err := codec.Encode(codec.Default, value); nil != err {
			return err
		}
	} else {
		raw, err := s.named.Encode(value)
		if nil != err {
			return err
		}
		if err := s.named.SetBytes(s.key, raw); nil != err {
			s.log.Errorf("%q: persist error: %s", s.key, err)
			return err
		}
	}

	// only the swap excludes readers
	s.Lock()
	s.value = value
	s.Unlock()

	return nil
}

// Key - copy of the record key
func (s *Singleton[V]) Key() []byte {
	key := make([]byte, len(s.key))
	copy(key, s.key)
	return key
}

// Bound - true if the value is backed by a record
func (s *Singleton[V]) Bound() bool {
	return nil != s.named
}

// State - reconciliation state, Ready once construction has returned
func (s *Singleton[V]) State() State {
	s.RLock()
	defer s.RUnlock()
	return s.state
}
