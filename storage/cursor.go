// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/assetd/fault"
)

// FetchCursor - cursor structure
//
// iteration reads committed data only, values staged in an open
// batch are not seen
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: p.maxRange(),
	}
}

// Seek - move cursor to the first key >= key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return up to count elements and advance the cursor past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.iterate(func(e Element) bool {
		results = append(results, e)
		return len(results) < count
	})

	if n := len(results); n > 0 {
		// smallest key strictly after the last one returned
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
//
// stops at the first error from f
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	var err error
	iterErr := cursor.iterate(func(e Element) bool {
		err = f(e.Key, e.Value)
		return nil == err
	})
	if nil != err {
		return err
	}
	return iterErr
}

// run f on each element until it returns false
func (cursor *FetchCursor) iterate(f func(e Element) bool) error {
	pool := cursor.pool

	pool.store.RLock()
	defer pool.store.RUnlock()

	if nil == pool.store.db {
		return fault.ErrStoreNotOpen
	}

	iter := pool.store.db.NewIterator(&cursor.maxRange, nil)
	for iter.Next() {
		if !f(pool.element(iter.Key(), iter.Value())) {
			break
		}
	}
	iter.Release()
	return iter.Error()
}
