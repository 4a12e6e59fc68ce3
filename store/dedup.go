// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/bitmark-inc/hivebox/identity"
)

// Add - store value under its dedup key
//
// a value with the same identity replaces the stored one, even if
// its other fields differ
func Add[V identity.Hashable](s *Typed[V], value V) error {
	return s.Put(identity.Key(value), value)
}

// FindExact - the stored value sharing query's identity
//
// this is the stored twin, which may differ from query in fields
// outside its identity
func FindExact[V identity.Hashable](s *Typed[V], query V) (V, error) {
	return s.Get(identity.Key(query))
}

// RemoveDuplicate - delete the record sharing value's identity
func RemoveDuplicate[V identity.Hashable](s *Typed[V], value V) error {
	return s.Delete(identity.Key(value))
}
