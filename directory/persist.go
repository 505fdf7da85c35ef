// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"strings"

	"github.com/bitmark-inc/assetd/fault"
)

// Load - fill the cache from the store
//
// a malformed record is fatal: a partly loaded directory would accept
// what it should reject
func (d *Directory[R]) Load() error {
	d.Lock()
	defer d.Unlock()

	n := 0
	err := d.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		record, err := d.unpack(value)
		if nil != err {
			fault.Panicf("directory load: record: %q  error: %s", key, err)
		}
		d.cache.Put(string(key), &entry[R]{record: record})
		n += 1
		return nil
	})
	if nil != err {
		return err
	}

	d.log.Infof("loaded: %d  cached: %d", n, d.cache.Size())
	return nil
}

// Dump - write every cached record to the store in one batch
//
// afterwards no cached record is dirty
func (d *Directory[R]) Dump() error {
	d.Lock()
	defer d.Unlock()

	items := d.cache.ItemsList()
	if 0 == len(items) {
		return nil
	}

	batch, err := d.pool.Store().NewBatch()
	if nil != err {
		return err
	}

	for _, item := range items {
		packed, err := d.pack(item.Value.record)
		if nil != err {
			batch.Abort()
			return err
		}
		batch.Put(d.pool, []byte(item.Key), packed)
	}

	err = batch.Commit()
	if nil != err {
		return err
	}

	for _, item := range items {
		item.Value.dirty = false
	}

	d.log.Infof("dumped: %d", len(items))
	return nil
}

// initial capacity of a List result
const listPreallocation = 64

// ListAll - the first DefaultListCount stored records
func (d *Directory[R]) ListAll() ([]Item[R], error) {
	return d.List("*", DefaultListCount, 0)
}

// List - stored records matching a filter
//
// filter is an exact name or a prefix followed by "*", a lone "*"
// matches everything. A negative start counts back from the end of
// the matching records. Records only in the cache are not listed.
func (d *Directory[R]) List(filter string, count int, start int) ([]Item[R], error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	d.Lock()
	defer d.Unlock()

	if !strings.HasSuffix(filter, "*") {
		record, err := d.read(filter)
		if d.notFound == err {
			return []Item[R]{}, nil
		}
		if nil != err {
			return nil, err
		}
		if start < 0 {
			start += 1
		}
		if start > 0 {
			return []Item[R]{}, nil
		}
		return []Item[R]{{Name: filter, Record: record}}, nil
	}

	prefix := strings.TrimSuffix(filter, "*")

	if start < 0 {
		total := 0
		err := d.scan(prefix, func(key []byte, value []byte) error {
			total += 1
			return nil
		})
		if nil != err {
			return nil, err
		}
		start += total
		if start < 0 {
			start = 0
		}
	}

	// count only bounds the result
	size := count
	if size > listPreallocation {
		size = listPreallocation
	}
	items := make([]Item[R], 0, size)
	skip := start
	err := d.scan(prefix, func(key []byte, value []byte) error {
		if skip > 0 {
			skip -= 1
			return nil
		}
		record, err := d.unpack(value)
		if nil != err {
			return err
		}
		items = append(items, Item[R]{Name: string(key), Record: record})
		if len(items) >= count {
			return errStop
		}
		return nil
	})
	if nil != err && errStop != err {
		return nil, err
	}
	return items, nil
}

// run f over the stored records whose name starts with prefix
func (d *Directory[R]) scan(prefix string, f func(key []byte, value []byte) error) error {
	p := []byte(prefix)
	err := d.pool.NewFetchCursor().Seek(p).Map(func(key []byte, value []byte) error {
		if !strings.HasPrefix(string(key), prefix) {
			return errStop
		}
		return f(key, value)
	})
	if errStop == err {
		return nil
	}
	return err
}
