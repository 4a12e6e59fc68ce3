// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package singleton - long lived values that survive restarts
//
// A Singleton is created once at start up with Initialise and then
// passed to whatever needs it; there is no global registry.
//
//   Uninitialised → Adopting | Seeding → Ready
//
// First run finds no record and seeds the default; later runs find
// their own earlier write and adopt it.  Nothing coordinates two
// processes seeding the same key at once.
//
// A record that exists but will not decode is treated as absent and
// overwritten with the default.  A failure of the engine itself while
// checking for the record is returned rather than reseeding: treating it
// as absent would overwrite a good record that could not be read this
// time, so the caller decides instead.  A field dropped from the value
// type makes the old record undecodable, so it is reseeded.
package singleton
