// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/assetd/fault"
)

// PoolHandle - one tagged table within the store
type PoolHandle struct {
	prefix byte
	limit  []byte
	store  *Store
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Prefix - the tag byte of this pool
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}

// Store - the store holding this pool
func (p *PoolHandle) Store() *Store {
	return p.store
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// the full key range of this pool
func (p *PoolHandle) maxRange() ldb_util.Range {
	return ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	p.store.RLock()
	defer p.store.RUnlock()
	err := p.store.database().Put(p.prefixKey(key), value, nil)
	fault.PanicIfError("pool.Put", err)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	p.store.RLock()
	defer p.store.RUnlock()
	err := p.store.database().Delete(p.prefixKey(key), nil)
	fault.PanicIfError("pool.Delete", err)
}

// Get - read a value for a given key, nil if not found
//
// values staged by an open batch are visible
func (p *PoolHandle) Get(key []byte) []byte {
	p.store.RLock()
	defer p.store.RUnlock()

	prefixedKey := p.prefixKey(key)
	if value, staged, found := p.store.cache.Get(string(prefixedKey)); staged {
		if !found {
			return nil
		}
		return value
	}

	value, err := p.store.database().Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	fault.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	return nil != p.Get(key)
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	maxRange := p.maxRange()

	p.store.RLock()
	defer p.store.RUnlock()

	iter := p.store.database().NewIterator(&maxRange, nil)

	found := false
	result := Element{}
	if iter.Last() {
		result = p.element(iter.Key(), iter.Value())
		found = true
	}
	iter.Release()
	err := iter.Error()
	fault.PanicIfError("pool.LastElement", err)
	return result, found
}

// copy an iterator entry, stripping the prefix
//
// contents of iterator slices must not be modified, and are only
// valid until the next call to Next
func (p *PoolHandle) element(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1)
	copy(dataKey, key[1:])

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
