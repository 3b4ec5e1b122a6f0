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
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

// read cache of packed person records
//
// packed bytes are held rather than decoded records so a caller
// mutating a loaded person cannot alter the cached copy
type dbCache struct {
	cache *cache.Cache
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (c *dbCache) Set(key string, value []byte) {
	c.cache.Set(key, value, defaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
