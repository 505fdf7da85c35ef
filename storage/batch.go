// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/assetd/fault"
)

// Batch - group of writes applied atomically on Commit
//
// staged values are visible to PoolHandle.Get until Commit or Abort
type Batch struct {
	sync.Mutex
	store  *Store
	batch  *leveldb.Batch
	count  int
	closed bool
}

// NewBatch - begin a batch on this store
func (s *Store) NewBatch() (*Batch, error) {
	s.Lock()
	defer s.Unlock()
	if nil == s.db {
		return nil, fault.ErrStoreNotOpen
	}
	if s.batchOpen {
		return nil, fault.ErrBatchInUse
	}
	s.batchOpen = true
	return &Batch{
		store: s,
		batch: new(leveldb.Batch),
	}, nil
}

// Put - stage a key/value pair
func (b *Batch) Put(p *PoolHandle, key []byte, value []byte) {
	b.Lock()
	defer b.Unlock()
	prefixedKey := p.prefixKey(key)
	b.batch.Put(prefixedKey, value)
	b.store.cache.Set(dbPut, string(prefixedKey), value)
	b.count += 1
}

// Delete - stage a removal
func (b *Batch) Delete(p *PoolHandle, key []byte) {
	b.Lock()
	defer b.Unlock()
	prefixedKey := p.prefixKey(key)
	b.batch.Delete(prefixedKey)
	b.store.cache.Set(dbDelete, string(prefixedKey), nil)
	b.count += 1
}

// Count - number of staged operations
func (b *Batch) Count() int {
	b.Lock()
	defer b.Unlock()
	return b.count
}

// Commit - write all staged operations
func (b *Batch) Commit() error {
	b.Lock()
	defer b.Unlock()

	if b.closed {
		return fault.ErrBatchClosed
	}
	b.closed = true

	b.store.Lock()
	defer b.store.Unlock()

	b.store.batchOpen = false
	defer b.store.cache.Clear()

	if nil == b.store.db {
		return fault.ErrStoreNotOpen
	}
	b.store.log.Debugf("commit: %d operations on %d keys", b.batch.Len(), b.store.cache.Count())
	return b.store.db.Write(b.batch, nil)
}

// Abort - discard all staged operations
func (b *Batch) Abort() {
	b.Lock()
	defer b.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	b.store.Lock()
	defer b.store.Unlock()

	b.batch.Reset()
	b.count = 0
	b.store.batchOpen = false
	b.store.cache.Clear()
}
