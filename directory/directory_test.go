// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetd/fault"
)

func TestWriteRead(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	d := newTestDirectory(s, 4)

	r := &testRecord{Value: "widget", Count: 15}
	assert.Nil(t, d.Write("WIDGET", r), "write")
	assert.Equal(t, 0, d.CacheSize(), "write filled the cache")

	actual, err := d.Read("WIDGET")
	assert.Nil(t, err, "read")
	assert.Equal(t, r, actual, "round trip")

	_, err = d.Read("GADGET")
	assert.Equal(t, errTestNotFound, err, "missing read")

	assert.Equal(t, fault.ErrNameTooShort, d.Write("EMPTY", &testRecord{}), "pack error")

	d.Erase("WIDGET")
	assert.False(t, d.Exists("WIDGET"), "erased")
}

func TestPutGetDump(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	d := newTestDirectory(s, 10)
	d.Put("one", &testRecord{Value: "1"})
	d.Put("two", &testRecord{Value: "2"})

	r, err := d.Get("two")
	assert.Nil(t, err)
	assert.Equal(t, "2", r.Value)
	assert.True(t, d.Exists("one"), "cached record")

	// not yet dumped
	_, err = d.Read("one")
	assert.Equal(t, errTestNotFound, err, "put reached the store")
	items, err := d.ListAll()
	assert.Nil(t, err)
	assert.Equal(t, 0, len(items), "list sees the cache")

	assert.Nil(t, d.Dump(), "dump")

	items, err = d.ListAll()
	assert.Nil(t, err)
	assert.Equal(t, []string{"one", "two"}, names(items), "list after dump")

	_, err = d.Get("three")
	assert.Equal(t, errTestNotFound, err, "missing get")
}

func TestLoadAfterRestart(t *testing.T) {
	s := setup(t)
	defer func() {
		teardown(s)
	}()

	d := newTestDirectory(s, 20)
	for i := 0; i < 12; i += 1 {
		d.Put(fmt.Sprintf("r%02d", i), &testRecord{Value: fmt.Sprintf("v%d", i), Count: uint64(i)})
	}
	before, err := d.All()
	assert.Nil(t, err)
	assert.Nil(t, d.Dump(), "dump")

	// restart
	s.Close()
	s = reopen(t)

	d = newTestDirectory(s, 20)
	assert.Equal(t, 0, d.CacheSize(), "new cache not empty")
	assert.Nil(t, d.Load(), "load")
	assert.Equal(t, 12, d.CacheSize(), "load count")

	after, err := d.All()
	assert.Nil(t, err)
	assert.Equal(t, before, after, "restart lost records")
}

func TestLoadMalformedIsFatal(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	s.Pool.TestData.Put([]byte("bad"), []byte{0xff})

	d := newTestDirectory(s, 4)
	assert.Panics(t, func() {
		_ = d.Load()
	}, "malformed record loaded")
}

func TestWriteBackOnEviction(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	d := newTestDirectory(s, 2)
	d.Put("a", &testRecord{Value: "A"})
	d.Put("b", &testRecord{Value: "B"})
	d.Put("c", &testRecord{Value: "C"}) // evicts a

	assert.Equal(t, 2, d.CacheSize(), "cache size")

	stored, err := d.Read("a")
	assert.Nil(t, err, "evicted record not written back")
	assert.Equal(t, "A", stored.Value)

	_, err = d.Read("b")
	assert.Equal(t, errTestNotFound, err, "cached record written early")

	// fallback on a cache miss
	assert.True(t, d.Exists("a"), "evicted record unknown")
	r, err := d.Get("a")
	assert.Nil(t, err, "fallback get")
	assert.Equal(t, "A", r.Value)

	// a clean evicted record is simply dropped from the cache
	assert.Nil(t, d.SetCapacity(1))
	assert.Equal(t, 1, d.CacheSize())
	assert.Equal(t, 1, d.Capacity())
	all, err := d.All()
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names(all), "record lost on shrink")
}

func TestWriteReplacesCachedCopy(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	d := newTestDirectory(s, 4)
	d.Put("x", &testRecord{Value: "old"})
	assert.Nil(t, d.Write("x", &testRecord{Value: "new"}))
	assert.Nil(t, d.Dump())

	r, err := d.Read("x")
	assert.Nil(t, err)
	assert.Equal(t, "new", r.Value, "dump restored stale data")
}

func TestFind(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	d := newTestDirectory(s, 1)
	d.Put("cached", &testRecord{Value: "Alpha"})
	assert.Nil(t, d.Write("stored", &testRecord{Value: "Beta"}))

	byValue := func(v string) func(string, *testRecord) bool {
		return func(name string, r *testRecord) bool {
			return strings.EqualFold(v, r.Value)
		}
	}

	name, r, err := d.Find(byValue("alpha"))
	assert.Nil(t, err)
	assert.Equal(t, "cached", name)
	assert.Equal(t, "Alpha", r.Value)

	name, _, err = d.Find(byValue("BETA"))
	assert.Nil(t, err, "store not scanned")
	assert.Equal(t, "stored", name)

	_, _, err = d.Find(byValue("gamma"))
	assert.Equal(t, errTestNotFound, err)

	cached := d.Cached()
	assert.Equal(t, 1, len(cached))
	assert.Equal(t, "cached", cached[0].Name)
}

func TestListPagination(t *testing.T) {
	s := setup(t)
	defer teardown(s)

	d := newTestDirectory(s, 4)
	for i := 0; i < 10; i += 1 {
		name := fmt.Sprintf("a%d", i)
		assert.Nil(t, d.Write(name, &testRecord{Value: name}))
	}
	assert.Nil(t, d.Write("b0", &testRecord{Value: "b0"}))
	assert.Nil(t, d.Write("Z0", &testRecord{Value: "Z0"}))

	items, err := d.List("a*", 3, 0)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a0", "a1", "a2"}, names(items), "first page")

	items, err = d.List("a*", 3, -3)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a7", "a8", "a9"}, names(items), "last page")

	items, err = d.List("a*", 3, 8)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a8", "a9"}, names(items), "short page")

	items, err = d.List("a*", 3, -20)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a0", "a1", "a2"}, names(items), "start before first")

	items, err = d.List("*", 100, 0)
	assert.Nil(t, err)
	assert.Equal(t, 12, len(items), "wildcard")
	assert.Equal(t, "Z0", items[0].Name, "store order")

	items, err = d.List("a5", 10, 0)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a5"}, names(items), "exact")

	items, err = d.List("a5", 10, -1)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a5"}, names(items), "exact from end")

	items, err = d.List("a5", 10, 1)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(items), "exact skipped")

	items, err = d.List("a", 10, 0)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(items), "exact is not a prefix")

	_, err = d.List("*", 0, 0)
	assert.Equal(t, fault.ErrInvalidCount, err)

	items, err = d.List("*", math.MaxInt, 0)
	assert.Nil(t, err, "huge count")
	assert.Equal(t, 12, len(items), "huge count")

	items, err = d.List("a*", math.MaxInt, -2)
	assert.Nil(t, err, "huge count from end")
	assert.Equal(t, []string{"a8", "a9"}, names(items), "huge count from end")
}
