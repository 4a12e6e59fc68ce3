// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package singleton

// State - reconciliation progress
type State int

// all possible states
const (
	Uninitialised State = iota
	Adopting
	Seeding
	Ready
)

func (state State) String() string {
	switch state {
	case Uninitialised:
		return "Uninitialised"
	case Adopting:
		return "Adopting"
	case Seeding:
		return "Seeding"
	case Ready:
		return "Ready"
	default:
		return "*Unknown*"
	}
}
