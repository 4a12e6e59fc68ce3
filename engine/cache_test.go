// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/hivebox/fault"
)

func setupTestCache() *readCache {
	return newReadCache(0)
}

func setupCachedDatabase(t *testing.T, expiry time.Duration) *Database {
	d, err := OpenTransient(&Options{CacheExpiry: expiry})
	require.Nil(t, err, "open transient error")
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestCacheSetThenGet(t *testing.T) {
	cache := setupTestCache()

	key := []byte("test")
	expected := []byte{'a', 'b', 'c', 'd'}

	actual, found := cache.get(key)
	if found {
		t.Errorf("error key %s already exist value %v\n", key, actual)
	}

	cache.set(key, expected)
	actual, found = cache.get(key)

	if !found || !bytes.Equal(actual, expected) {
		t.Errorf("error set key %s, expect %v but get %v\n", key, expected, actual)
	}
}

func TestCacheCopies(t *testing.T) {
	cache := setupTestCache()

	key := []byte("test")
	value := []byte{'a'}
	cache.set(key, value)
	value[0] = 'z'

	actual, _ := cache.get(key)
	actual[0] = 'y'

	again, _ := cache.get(key)
	if !bytes.Equal([]byte{'a'}, again) {
		t.Errorf("cached value aliased, get %v", again)
	}
}

func TestCacheRemoveAndClear(t *testing.T) {
	cache := setupTestCache()

	cache.set([]byte("one"), []byte{1})
	cache.set([]byte("two"), []byte{2})

	cache.remove([]byte("one"))
	if _, found := cache.get([]byte("one")); found {
		t.Errorf("removed entry still present")
	}

	cache.clear()
	if 0 != cache.count() {
		t.Errorf("error clear not working, expect cache is empty but not")
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := newReadCache(10 * time.Millisecond)

	key := []byte("test")
	cache.set(key, []byte{'a'})
	time.Sleep(30 * time.Millisecond)

	if _, found := cache.get(key); found {
		t.Errorf("expired entry still present")
	}
}

func TestGetServedFromCache(t *testing.T) {
	d := setupCachedDatabase(t, time.Minute)
	key := []byte("key")

	require.Nil(t, d.Put(key, []byte("one")), "put error")
	assert.Equal(t, 0, d.cache.count(), "writes must not fill the cache")

	value, err := d.Get(key)
	require.Nil(t, err, "get error")
	assert.Equal(t, []byte("one"), value, "wrong value")
	assert.Equal(t, 1, d.cache.count(), "read not cached")

	// change the record behind the cache
	require.Nil(t, d.db.Put(key, []byte("two"), nil), "leveldb put error")

	value, err = d.Get(key)
	require.Nil(t, err, "get error")
	assert.Equal(t, []byte("one"), value, "second read did not come from the cache")

	found, err := d.Has(key)
	assert.Nil(t, err, "has error")
	assert.True(t, found, "has must see the cached key")
}

func TestWriteDropsCachedValue(t *testing.T) {
	d := setupCachedDatabase(t, time.Minute)
	key := []byte("key")

	require.Nil(t, d.Put(key, []byte("one")), "put error")
	_, err := d.Get(key)
	require.Nil(t, err, "get error")

	require.Nil(t, d.Put(key, []byte("two")), "put error")
	value, err := d.Get(key)
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("two"), value, "stale value after put")

	require.Nil(t, d.Delete(key), "delete error")
	_, err = d.Get(key)
	assert.Equal(t, fault.ErrNotFound, err, "stale value after delete")
	assert.Equal(t, 0, d.cache.count(), "misses must not be cached")
}

func TestCachedValueExpires(t *testing.T) {
	d := setupCachedDatabase(t, 20*time.Millisecond)
	key := []byte("key")

	require.Nil(t, d.Put(key, []byte("one")), "put error")
	_, err := d.Get(key)
	require.Nil(t, err, "get error")

	require.Nil(t, d.db.Put(key, []byte("two"), nil), "leveldb put error")
	time.Sleep(60 * time.Millisecond)

	value, err := d.Get(key)
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("two"), value, "expired value still served")
}

func TestCloseClearsCache(t *testing.T) {
	d, err := OpenTransient(nil)
	require.Nil(t, err, "open transient error")

	require.Nil(t, d.Put([]byte("key"), []byte("one")), "put error")
	_, err = d.Get([]byte("key"))
	require.Nil(t, err, "get error")

	require.Nil(t, d.Close(), "close error")
	assert.Equal(t, 0, d.cache.count(), "cache kept after close")
}
