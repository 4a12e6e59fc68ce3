// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - value serialisation for stored records
//
// The codec is part of the on-disk format: a database written with one
// codec must be read back with the same one.
package codec
