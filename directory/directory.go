// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/limitedcache"
	"github.com/bitmark-inc/assetd/storage"
	"github.com/bitmark-inc/assetd/util"
)

// DefaultListCount - number of records returned by ListAll
const DefaultListCount = 1000

// PackFunc - serialise a record for the store
type PackFunc[R any] func(record *R) (util.Packed, error)

// UnpackFunc - deserialise a record from the store
type UnpackFunc[R any] func(buffer []byte) (*R, error)

// Item - one named record
type Item[R any] struct {
	Name   string
	Record *R
}

// cached value, dirty until it reaches the store
type entry[R any] struct {
	record *R
	dirty  bool
}

// Directory - cache + tagged pool
type Directory[R any] struct {
	sync.Mutex

	log      *logger.L
	pool     *storage.PoolHandle
	cache    *limitedcache.Cache[string, *entry[R]]
	pack     PackFunc[R]
	unpack   UnpackFunc[R]
	notFound error
}

// New - create a directory over a pool
//
// notFound is the error returned by Read and Get for an unknown name
func New[R any](name string, pool *storage.PoolHandle, capacity int, pack PackFunc[R], unpack UnpackFunc[R], notFound error) *Directory[R] {
	d := &Directory[R]{
		log:      logger.New(name),
		pool:     pool,
		cache:    limitedcache.New[string, *entry[R]](capacity),
		pack:     pack,
		unpack:   unpack,
		notFound: notFound,
	}
	d.cache.SetEvictHandler(d.writeBack)
	return d
}

// called by the cache, under the directory lock
func (d *Directory[R]) writeBack(name string, e *entry[R]) {
	if !e.dirty {
		return
	}
	packed, err := d.pack(e.record)
	fault.PanicIfError("directory.writeBack pack", err)
	d.pool.Put([]byte(name), packed)
	d.log.Debugf("evicted: %q written back", name)
}

// Capacity - current cache capacity
func (d *Directory[R]) Capacity() int {
	d.Lock()
	defer d.Unlock()
	return d.cache.Capacity()
}

// SetCapacity - resize the cache, dirty records evicted by shrinking
// are written back
func (d *Directory[R]) SetCapacity(n int) error {
	d.Lock()
	defer d.Unlock()
	return d.cache.SetCapacity(n)
}

// CacheSize - number of cached records
func (d *Directory[R]) CacheSize() int {
	d.Lock()
	defer d.Unlock()
	return d.cache.Size()
}

// Write - persist a record directly to the store
//
// the cache is not filled, but a cached copy is replaced so a later Dump
// cannot restore stale data
func (d *Directory[R]) Write(name string, record *R) error {
	packed, err := d.pack(record)
	if nil != err {
		return err
	}

	d.Lock()
	defer d.Unlock()

	d.pool.Put([]byte(name), packed)
	if d.cache.Exists(name) {
		d.cache.Put(name, &entry[R]{record: record})
	}
	return nil
}

// Read - fetch a record directly from the store
func (d *Directory[R]) Read(name string) (*R, error) {
	d.Lock()
	defer d.Unlock()
	return d.read(name)
}

func (d *Directory[R]) read(name string) (*R, error) {
	packed := d.pool.Get([]byte(name))
	if nil == packed {
		return nil, d.notFound
	}
	return d.unpack(packed)
}

// Erase - remove a record from the store and the cache
func (d *Directory[R]) Erase(name string) {
	d.Lock()
	defer d.Unlock()
	d.cache.Delete(name)
	d.pool.Delete([]byte(name))
}

// Put - add or replace a record in the cache
//
// the record reaches the store on Dump or on eviction
func (d *Directory[R]) Put(name string, record *R) {
	d.Lock()
	defer d.Unlock()
	d.cache.Put(name, &entry[R]{record: record, dirty: true})
}

// Get - fetch a record, from the cache or else the store
//
// a record read from the store is cached
func (d *Directory[R]) Get(name string) (*R, error) {
	d.Lock()
	defer d.Unlock()

	if e, err := d.cache.Get(name); nil == err {
		return e.record, nil
	}

	record, err := d.read(name)
	if nil != err {
		return nil, err
	}
	d.cache.Put(name, &entry[R]{record: record})
	return record, nil
}

// Exists - check the cache, then the store
func (d *Directory[R]) Exists(name string) bool {
	d.Lock()
	defer d.Unlock()
	return d.cache.Exists(name) || d.pool.Has([]byte(name))
}

// Find - first record accepted by match
//
// a linear scan of the cache followed by the store records that are not
// cached; returns the notFound error if nothing matches
func (d *Directory[R]) Find(match func(name string, record *R) bool) (string, *R, error) {
	d.Lock()
	defer d.Unlock()

	cached := d.cache.ItemsMap()
	for name, e := range cached {
		if match(name, e.record) {
			return name, e.record, nil
		}
	}

	foundName := ""
	var found *R
	err := d.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		name := string(key)
		if _, ok := cached[name]; ok {
			return nil
		}
		record, err := d.unpack(value)
		if nil != err {
			return err
		}
		if match(name, record) {
			foundName = name
			found = record
			return errStop
		}
		return nil
	})
	if errStop == err {
		return foundName, found, nil
	}
	if nil != err {
		return "", nil, err
	}
	return "", nil, d.notFound
}

// sentinel to end a scan early
var errStop = fault.ProcessError("stop")

// All - every known record in name order, cached values taking
// precedence over stored ones
func (d *Directory[R]) All() ([]Item[R], error) {
	d.Lock()
	defer d.Unlock()

	records := make(map[string]*R)
	err := d.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		record, err := d.unpack(value)
		if nil != err {
			return err
		}
		records[string(key)] = record
		return nil
	})
	if nil != err {
		return nil, err
	}

	for name, e := range d.cache.ItemsMap() {
		records[name] = e.record
	}

	items := make([]Item[R], 0, len(records))
	for name, record := range records {
		items = append(items, Item[R]{Name: name, Record: record})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

// Cached - the current cache content, most recently used first
//
// recency is not changed
func (d *Directory[R]) Cached() []Item[R] {
	d.Lock()
	defer d.Unlock()

	list := d.cache.ItemsList()
	items := make([]Item[R], 0, len(list))
	for _, item := range list {
		items = append(items, Item[R]{Name: item.Key, Record: item.Value.record})
	}
	return items
}
