// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// hivebox - inspect and edit a hivebox database
//
//   hivebox -c hivebox.conf stats
//   hivebox -c hivebox.conf dump --count 50 6869
//   hivebox -c hivebox.conf get --string settings
//   hivebox -c hivebox.conf delete 0102ff
//
// every run other than help and version counts itself in a run state
// record, which stats displays; that record is kept in a separate
// state database beside the inspected one, never among its records
package main
