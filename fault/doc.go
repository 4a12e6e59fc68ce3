// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Failures are split into three families: engine (the key/value store
// itself failed), codec (a value could not be encoded or decoded) and
// not found (a normal, expected absence of a record).
package fault
