// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for package tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/hivebox/identity"
	"github.com/bitmark-inc/logger"
)

const (
	LogCategory = "testing"
)

var dir string

// Hello - a small record used throughout the tests
type Hello struct {
	World string
	Sus   string
	Int   int32
}

// DefaultHello - the usual default value
func DefaultHello() Hello {
	return Hello{
		World: "world",
		Sus:   "sus",
		Int:   0,
	}
}

// HashIdentity - every field takes part in identity
func (h Hello) HashIdentity(hasher *identity.Hasher) {
	hasher.String(h.World).String(h.Sus).Int64(int64(h.Int))
}

// Note - a record whose Body is not part of its identity
type Note struct {
	Title string
	Body  string
}

// HashIdentity - title only
func (n Note) HashIdentity(hasher *identity.Hasher) {
	hasher.String(n.Title)
}

// SetupTestLogger - start logging into a temporary directory
func SetupTestLogger() {
	d, err := os.MkdirTemp("", "hivebox-testing")
	if nil != err {
		panic(fmt.Sprintf("temporary directory error: %s", err))
	}
	dir = d

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialise error: %s", err))
	}
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Counter - a singleton value that names its own record
type Counter struct {
	Count uint64
}

// StoreName - the record key for a Counter
func (Counter) StoreName() []byte {
	return []byte("counter")
}
