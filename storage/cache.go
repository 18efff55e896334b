// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

const (
	defaultExpiration      = 10 * time.Minute
	defaultCleanupInterval = 2 * time.Minute
)

// read cache of nonces keyed by the database key
type nonceCache struct {
	cache *cache.Cache
}

func newNonceCache() *nonceCache {
	return &nonceCache{
		cache: cache.New(defaultExpiration, defaultCleanupInterval),
	}
}

func (c *nonceCache) get(key []byte) (uint64, bool) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return 0, false
	}
	return obj.(uint64), true
}

func (c *nonceCache) set(key []byte, nonce uint64) {
	c.cache.Set(string(key), nonce, cache.DefaultExpiration)
}

func (c *nonceCache) clear() {
	c.cache.Flush()
}
