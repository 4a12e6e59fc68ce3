// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua configuration files
//
// A configuration file is a Lua chunk that returns a table, e.g.
//
//   local M = {}
//   M.data_directory = "."
//   M.database = {
//       directory = "data",
//       name = "hivebox.leveldb",
//       state = "hivebox-state.leveldb",
//       codec = "msgpack",
//       cache_expiry = "2m",
//   }
//   M.logging = {
//       size = 1048576,
//       count = 10,
//       levels = { DEFAULT = "info" },
//   }
//   return M
package configuration
