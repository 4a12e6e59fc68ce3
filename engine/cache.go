// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 2 * time.Minute
	cleanupInterval   = 1 * time.Minute
)

// recently read records
//
// filled by Get and emptied of a key by every write to it, so an entry
// is never older than the database record it shadows; entries expire
// after a fixed time so only keys that are read repeatedly stay resident
type readCache struct {
	cache      *cache.Cache
	expiration time.Duration
}

func newReadCache(expiration time.Duration) *readCache {
	if expiration <= 0 {
		expiration = defaultExpiration
	}
	return &readCache{
		cache:      cache.New(expiration, cleanupInterval),
		expiration: expiration,
	}
}

// the returned value is a private copy
func (c *readCache) get(key []byte) ([]byte, bool) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return nil, false
	}
	data := obj.([]byte)
	value := make([]byte, len(data))
	copy(value, data)
	return value, true
}

func (c *readCache) set(key []byte, value []byte) {
	data := make([]byte, len(value))
	copy(data, value)
	c.cache.Set(string(key), data, c.expiration)
}

func (c *readCache) remove(key []byte) {
	c.cache.Delete(string(key))
}

func (c *readCache) count() int {
	return c.cache.ItemCount()
}

func (c *readCache) clear() {
	c.cache.Flush()
}
