// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/storage"
)

// helper to add to pool
func poolPut(p *storage.PoolHandle, key string, data string) {
	p.Put([]byte(key), []byte(data))
}

// helper to remove from pool
func poolDelete(p *storage.PoolHandle, key string) {
	p.Delete([]byte(key))
}

// main pool test
func TestPool(t *testing.T) {
	s := setup(t)
	defer func() {
		teardown(s)
	}()

	p := s.Pool.TestData

	// ensure that pool was empty
	checkEmpty(t, p)

	poolPut(p, "key-one", "data-one")
	poolPut(p, "key-two", "data-two")
	poolPut(p, "key-remove-me", "to be deleted")
	poolDelete(p, "key-remove-me")
	poolPut(p, "key-three", "data-three")
	poolPut(p, "key-one", "data-one")     // duplicate
	poolPut(p, "key-three", "data-three") // duplicate
	poolPut(p, "key-four", "data-four")
	poolPut(p, "key-delete-this", "to be deleted")
	poolPut(p, "key-five", "data-five")
	poolPut(p, "key-six", "data-six")
	poolDelete(p, "key-delete-this")
	poolPut(p, "key-seven", "data-seven")
	poolPut(p, "key-one", "data-one(NEW)") // duplicate

	// ensure that data is correct
	checkResults(t, p)

	// other pools are not affected
	assert.Nil(t, s.Pool.Assets.NewFetchCursor().Map(func(key []byte, value []byte) error {
		t.Errorf("unexpected asset key: %q", key)
		return nil
	}))

	// check that restarting database keeps data
	s.Close()
	s, err := storage.Open(databaseFileName, storage.ReadOnly)
	if nil != err {
		t.Fatalf("reopen error: %s", err)
	}
	checkResults(t, s.Pool.TestData)
}

func checkEmpty(t *testing.T, p *storage.PoolHandle) {
	data, err := p.NewFetchCursor().Fetch(20)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(data), "pool not empty")
	assert.False(t, p.Has(nonExistantKey), "non-existant key found")
	assert.Nil(t, p.Get(nonExistantKey), "non-existant key has data")
}

func checkResults(t *testing.T, p *storage.PoolHandle) {

	// ensure we get all of the pool
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	if nil != err {
		t.Fatalf("Error on Fetch: %v", err)
	}

	// ensure lengths match
	if len(data) != len(expectedElements) {
		t.Fatalf("Length mismatch, got: %d  expected: %d", len(data), len(expectedElements))
	}

	// compare all items from pool
	for i, a := range data {
		e := expectedElements[i]
		if !bytes.Equal(a.Key, e.Key) {
			t.Errorf("%d: key: actual: %q  expected: %q", i, a.Key, e.Key)
		}
		if !bytes.Equal(a.Value, e.Value) {
			t.Errorf("%d: value: actual: %q  expected: %q", i, a.Value, e.Value)
		}
		if !bytes.Equal(p.Get(e.Key), e.Value) {
			t.Errorf("%d: get: %q  expected: %q", i, p.Get(e.Key), e.Value)
		}
	}

	last, found := p.LastElement()
	assert.True(t, found, "last element")
	assert.Equal(t, expectedElements[len(expectedElements)-1], last, "last element")
}

func TestFetchInChunks(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	p := s.Pool.TestData
	for _, e := range expectedElements {
		p.Put(e.Key, e.Value)
	}

	cursor := p.NewFetchCursor()
	all := []storage.Element{}
	for {
		data, err := cursor.Fetch(3)
		assert.Nil(t, err, "fetch error")
		if 0 == len(data) {
			break
		}
		all = append(all, data...)
	}
	assert.Equal(t, expectedElements, all, "chunked fetch")

	// seek into the middle
	data, err := p.NewFetchCursor().Seek([]byte("key-s")).Fetch(2)
	assert.Nil(t, err)
	assert.Equal(t, expectedElements[3:5], data, "seek")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestMapStopsOnError(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	p := s.Pool.TestData
	for _, e := range expectedElements {
		p.Put(e.Key, e.Value)
	}

	n := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		if 2 == n {
			return fault.ErrInvalidCount
		}
		return nil
	})
	assert.Equal(t, fault.ErrInvalidCount, err, "map error")
	assert.Equal(t, 2, n, "map did not stop")
}

func TestInMemory(t *testing.T) {
	setupLogger()
	defer func() {
		logger.Finalise()
		removeFiles()
	}()

	s, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	defer s.Close()

	s.Pool.Contracts.Put([]byte("WIDGET"), []byte("contract"))
	assert.Equal(t, []byte("contract"), s.Pool.Contracts.Get([]byte("WIDGET")))
	assert.Nil(t, s.Pool.Assets.Get([]byte("WIDGET")), "tags not separated")
	assert.Equal(t, byte('G'), s.Pool.Contracts.Prefix())

	s.Pool.TestData.Put([]byte("WIDGET"), []byte("test"))
	assert.Nil(t, s.Pool.Assets.Get([]byte("WIDGET")), "test pool leaked")
	assert.Equal(t, []byte("contract"), s.Pool.Contracts.Get([]byte("WIDGET")), "test pool leaked")
	assert.Equal(t, byte('Z'), s.Pool.TestData.Prefix())
}
