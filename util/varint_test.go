// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{1 << 56, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64RoundTrip(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: encode %x", i, item.value)

		// trailing data is left alone
		buffer := util.AppendVarint64([]byte{0xaa}, item.value)
		buffer = append(buffer, 0xff, 0x97)
		value, count := util.FromVarint64(buffer[1:])
		assert.Equal(t, item.value, value, "%d: decode", i)
		assert.Equal(t, len(item.encoded), count, "%d: count", i)
		assert.Equal(t, []byte{0xff, 0x97}, buffer[1+count:], "%d: suffix", i)
	}
}

func TestVarint64Truncated(t *testing.T) {
	truncated := [][]byte{
		{},
		{0x80},
		{0xff, 0xff},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for i, item := range truncated {
		value, count := util.FromVarint64(item)
		assert.Equal(t, uint64(0), value, "%d: value", i)
		assert.Equal(t, 0, count, "%d: count", i)
	}
}

func TestBoundedVarint64(t *testing.T) {
	value, count := util.BoundedVarint64([]byte{0x89, 0x01}, 200)
	assert.Equal(t, 137, value)
	assert.Equal(t, 2, count)

	value, count = util.BoundedVarint64([]byte{0x89, 0x01}, 100)
	assert.Equal(t, 0, value, "out of range")
	assert.Equal(t, 0, count, "out of range")

	_, count = util.BoundedVarint64([]byte{0x89}, 200)
	assert.Equal(t, 0, count, "truncated")
}
