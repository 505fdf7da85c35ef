// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package limitedcache - a bounded key/value cache with least
// recently used eviction
//
// The cache is not synchronised; the owner must serialise access.
package limitedcache

import (
	"container/list"

	"github.com/bitmark-inc/assetd/fault"
)

// Item - a key/value pair as returned by ItemsList
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// EvictHandler - called with each entry dropped to respect the capacity
type EvictHandler[K comparable, V any] func(key K, value V)

// Cache - most recently used entry is at the front of the list
type Cache[K comparable, V any] struct {
	maxSize int
	list    *list.List
	index   map[K]*list.Element
	evicted EvictHandler[K, V]
}

// New - create a cache that holds up to 'n' items
func New[K comparable, V any](n int) *Cache[K, V] {
	if n < 1 {
		n = 1
	}
	return &Cache[K, V]{
		maxSize: n,
		list:    list.New(),
		index:   make(map[K]*list.Element),
	}
}

// SetEvictHandler - register a function to receive evicted entries
func (c *Cache[K, V]) SetEvictHandler(f EvictHandler[K, V]) {
	c.evicted = f
}

// Put - insert or replace, the key becomes most recently used
func (c *Cache[K, V]) Put(key K, value V) {
	if e, ok := c.index[key]; ok {
		e.Value.(*Item[K, V]).Value = value
		c.list.MoveToFront(e)
		return
	}
	c.index[key] = c.list.PushFront(&Item[K, V]{Key: key, Value: value})
	c.trim()
}

// Get - fetch a value and mark it most recently used
//
// an absent key is fault.ErrCacheMiss
func (c *Cache[K, V]) Get(key K) (V, error) {
	e, ok := c.index[key]
	if !ok {
		var zero V
		return zero, fault.ErrCacheMiss
	}
	c.list.MoveToFront(e)
	return e.Value.(*Item[K, V]).Value, nil
}

// Peek - fetch a value without changing the recency order
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	e, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.Value.(*Item[K, V]).Value, true
}

// Exists - check for a key without changing the recency order
func (c *Cache[K, V]) Exists(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Delete - remove a key, true if it was present
func (c *Cache[K, V]) Delete(key K) bool {
	e, ok := c.index[key]
	if !ok {
		return false
	}
	c.list.Remove(e)
	delete(c.index, key)
	return true
}

// Size - number of entries
func (c *Cache[K, V]) Size() int {
	return c.list.Len()
}

// Capacity - maximum number of entries
func (c *Cache[K, V]) Capacity() int {
	return c.maxSize
}

// Clear - drop all entries, the evict handler is not called
func (c *Cache[K, V]) Clear() {
	c.list.Init()
	c.index = make(map[K]*list.Element)
}

// SetCapacity - change the bound, evicting down to it if necessary
func (c *Cache[K, V]) SetCapacity(n int) error {
	if n < 1 {
		return fault.ErrInvalidCapacity
	}
	c.maxSize = n
	c.trim()
	return nil
}

// ItemsMap - copy of the content, recency order is unchanged
func (c *Cache[K, V]) ItemsMap() map[K]V {
	result := make(map[K]V, len(c.index))
	for e := c.list.Front(); nil != e; e = e.Next() {
		item := e.Value.(*Item[K, V])
		result[item.Key] = item.Value
	}
	return result
}

// ItemsList - copy of the content from most to least recently used
func (c *Cache[K, V]) ItemsList() []Item[K, V] {
	result := make([]Item[K, V], 0, c.list.Len())
	for e := c.list.Front(); nil != e; e = e.Next() {
		result = append(result, *e.Value.(*Item[K, V]))
	}
	return result
}

// drop least recently used entries until within the bound
func (c *Cache[K, V]) trim() {
	for c.list.Len() > c.maxSize {
		e := c.list.Back()
		item := e.Value.(*Item[K, V])
		c.list.Remove(e)
		delete(c.index, item.Key)
		if nil != c.evicted {
			c.evicted(item.Key, item.Value)
		}
	}
}
