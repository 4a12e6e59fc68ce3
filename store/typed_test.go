// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/hivebox/fault"
	"github.com/bitmark-inc/hivebox/fixtures"
	"github.com/bitmark-inc/hivebox/store"
)

func TestInsert(t *testing.T) {
	s := setupHello(t)

	hello := fixtures.DefaultHello()
	require.Nil(t, s.Put([]byte("hello"), hello), "put error")

	actual, err := s.Get([]byte("hello"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, hello, actual, "wrong value")
}

func TestGetMissing(t *testing.T) {
	s := setupHello(t)

	actual, err := s.Get([]byte("missing"))
	assert.True(t, fault.IsErrNotFound(err), "expected not found, got: %v", err)
	assert.Equal(t, fixtures.Hello{}, actual, "missing record must give zero value")
}

func TestGetWrongType(t *testing.T) {
	s := setupHello(t)

	require.Nil(t, s.Handle().Put([]byte("bad"), malformed), "raw put error")

	_, err := s.Get([]byte("bad"))
	assert.True(t, fault.IsErrCodec(err), "expected codec error, got: %v", err)
	assert.False(t, fault.IsErrNotFound(err), "codec error must not be not found")
}

func TestRemove(t *testing.T) {
	s := setupHello(t)

	require.Nil(t, s.Put([]byte("hello"), fixtures.DefaultHello()), "put error")
	assert.Nil(t, s.Delete([]byte("hello")), "delete error")
	assert.Nil(t, s.Delete([]byte("hello")), "delete must be idempotent")

	_, err := s.Get([]byte("hello"))
	assert.True(t, fault.IsErrNotFound(err), "deleted record still present")
}

func TestScanOrder(t *testing.T) {
	s := setupHello(t)

	b := fixtures.Hello{World: "world", Sus: "b", Int: 2}
	a := fixtures.Hello{World: "world", Sus: "a", Int: 1}
	require.Nil(t, s.Put([]byte("b"), b), "put b error")
	require.Nil(t, s.Put([]byte("a"), a), "put a error")

	assert.Equal(t, []fixtures.Hello{a, b}, s.CollectAll(), "scan must follow key order")
}

func TestScanSkipsMalformed(t *testing.T) {
	s := setupHello(t)

	hello := fixtures.DefaultHello()
	hello2 := fixtures.Hello{World: "world", Sus: "sus", Int: 1}
	require.Nil(t, s.Put([]byte("hello"), hello), "put error")
	require.Nil(t, s.Handle().Put([]byte("hello1"), malformed), "raw put error")
	require.Nil(t, s.Put([]byte("hello2"), hello2), "put error")

	actual := []fixtures.Hello{}
	for v := range s.Scan() {
		actual = append(actual, v)
	}
	assert.Equal(t, []fixtures.Hello{hello, hello2}, actual, "malformed record not skipped")
	assert.Equal(t, 2, s.Count(), "wrong count")

	keys := []string{}
	for k := range s.ScanWithKeys() {
		keys = append(keys, string(k))
	}
	assert.Equal(t, []string{"hello", "hello2"}, keys, "malformed key reported")
}

func TestScanSkipsOtherStruct(t *testing.T) {
	s := setupHello(t)

	hello := fixtures.DefaultHello()
	require.Nil(t, s.Put([]byte("a-hello"), hello), "put error")
	require.Nil(t, store.Set(s.Named(), []byte("b-counter"), fixtures.Counter{Count: 3}), "set error")

	assert.Equal(t, []fixtures.Hello{hello}, s.CollectAll(), "other struct decoded as Hello")

	_, err := s.Get([]byte("b-counter"))
	assert.True(t, fault.IsErrCodec(err), "expected codec error, got: %v", err)
}

func TestScanIsRestartable(t *testing.T) {
	s := setupHello(t)

	require.Nil(t, s.Put([]byte("hello"), fixtures.DefaultHello()), "put error")

	seq := s.Scan()
	first := 0
	for range seq {
		first += 1
	}
	second := 0
	for range seq {
		second += 1
	}
	assert.Equal(t, 1, first, "first pass")
	assert.Equal(t, first, second, "second pass over same sequence")

	require.Nil(t, s.Put([]byte("hello2"), fixtures.DefaultHello()), "put error")
	assert.Equal(t, 2, len(s.CollectAll()), "fresh scan must see new record")
}

func TestScanBreak(t *testing.T) {
	s := setupHello(t)

	for _, k := range []string{"a", "b", "c", "d"} {
		require.Nil(t, s.Put([]byte(k), fixtures.DefaultHello()), "put error")
	}

	n := 0
	for range s.Scan() {
		n += 1
		if 2 == n {
			break
		}
	}
	assert.Equal(t, 2, n, "break did not stop scan")
}

func TestCollectAllEmpty(t *testing.T) {
	s := setupHello(t)

	all := s.CollectAll()
	assert.NotNil(t, all, "empty collection must not be nil")
	assert.Equal(t, 0, len(all), "empty store")
}

func TestRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.leveldb")

	s, err := store.OpenTyped[fixtures.Hello](path, nil)
	require.Nil(t, err, "open error")
	require.Nil(t, s.Put([]byte("hello"), fixtures.DefaultHello()), "put error")
	require.Nil(t, s.Close(), "close error")

	s, err = store.OpenTyped[fixtures.Hello](path, nil)
	require.Nil(t, err, "reopen error")
	defer s.Close()

	actual, err := s.Get([]byte("hello"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, fixtures.DefaultHello(), actual, "value not restored")
}

func TestSharedHandle(t *testing.T) {
	s := setupHello(t)
	other := store.NewTyped[fixtures.Hello](s.Handle(), nil)

	require.Nil(t, s.Put([]byte("hello"), fixtures.DefaultHello()), "put error")

	actual, err := other.Get([]byte("hello"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, fixtures.DefaultHello(), actual, "second store must see the record")
}
