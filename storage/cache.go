// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - values staged by an open batch
//
// entries live until the batch commits or aborts
type Cache interface {
	// Get returns value, staged, found
	Get(string) ([]byte, bool, bool)
	Set(stagedOp, string, []byte)
	Count() int
	Clear()
}

type stagedOp int

const (
	dbPut stagedOp = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    stagedOp
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool, bool) {
	obj, staged := c.cache.Get(key)
	if !staged {
		return nil, false, false
	}

	data := obj.(cacheData)
	switch data.op {
	case dbDelete:
		// a staged delete hides the database value
		return nil, true, false
	default:
		return data.value, true, true
	}
}

// later operations on the same key replace earlier ones
func (c *dbCache) Set(op stagedOp, key string, value []byte) {
	c.cache.Set(key, cacheData{op: op, value: value}, cache.NoExpiration)
}

// number of distinct keys staged
func (c *dbCache) Count() int {
	return c.cache.ItemCount()
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
