// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/hivebox/fault"
	"github.com/bitmark-inc/hivebox/singleton"
	"github.com/bitmark-inc/hivebox/store"
)

// RunState - how often this database has been opened
type RunState struct {
	Runs       uint64 `json:"runs"`
	FirstStart int64  `json:"first_start"`
	LastStart  int64  `json:"last_start"`
}

// StoreName - record key of the run state
func (RunState) StoreName() []byte {
	return []byte("hivebox:runs")
}

// count this start
func (r RunState) bump(now time.Time) RunState {
	r.Runs += 1
	if 0 == r.FirstStart {
		r.FirstStart = now.Unix()
	}
	r.LastStart = now.Unix()
	return r
}

// named is the state database, never the one being inspected
//
// with no state database, or a read only one without a record, the run
// state is memory only
func openRuns(named *store.Named, readOnly bool, now time.Time) (*singleton.Singleton[RunState], error) {
	if nil == named {
		return singleton.InitialiseNamed(nil, RunState{})
	}
	if readOnly {
		runs, err := singleton.Load[RunState](named, RunState{}.StoreName())
		if fault.IsErrNotFound(err) {
			return singleton.InitialiseNamed(nil, RunState{})
		}
		return runs, err
	}

	runs, err := singleton.InitialiseNamed(named, RunState{FirstStart: now.Unix()})
	if nil != err {
		return nil, err
	}
	err = runs.Update(func(current RunState) RunState {
		return current.bump(now)
	})
	if nil != err {
		return nil, err
	}
	return runs, nil
}
