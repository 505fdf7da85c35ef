// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/assetd/fault"
)

// largest variable length field accepted by the unpacker
const maximumFieldLength = 65536

// Packed - a packed binary record
type Packed []byte

// AppendUint64 - append a Varint64
func (p Packed) AppendUint64(value uint64) Packed {
	return AppendVarint64(p, value)
}

// AppendInt64 - append a signed value as the Varint64 of its two's complement bits
func (p Packed) AppendInt64(value int64) Packed {
	return AppendVarint64(p, uint64(value))
}

// AppendBytes - append bytes prefixed by Varint64(length)
func (p Packed) AppendBytes(data []byte) Packed {
	p = AppendVarint64(p, uint64(len(data)))
	return append(p, data...)
}

// AppendString - append a string prefixed by Varint64(length)
func (p Packed) AppendString(s string) Packed {
	p = AppendVarint64(p, uint64(len(s)))
	return append(p, s...)
}

// AppendFixed - append raw bytes, no length prefix
func (p Packed) AppendFixed(data []byte) Packed {
	return append(p, data...)
}

// Unpacker - sequential reader over a packed record
//
// the first failure is sticky: all later reads return zero values
// and Err returns the original failure
type Unpacker struct {
	buffer []byte
	n      int
	err    error
}

// NewUnpacker - start reading a record
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{buffer: buffer}
}

// Uint64 - read a Varint64
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = fault.ErrRecordTruncated
		return 0
	}
	u.n += count
	return value
}

// Int64 - read a signed value written by AppendInt64
func (u *Unpacker) Int64() int64 {
	return int64(u.Uint64())
}

// Bytes - read a length prefixed byte field, the result is a copy
//
// an empty field is returned as nil
func (u *Unpacker) Bytes() []byte {
	if nil != u.err {
		return nil
	}
	length, count := BoundedVarint64(u.buffer[u.n:], maximumFieldLength)
	if 0 == count {
		u.err = fault.ErrRecordTruncated
		return nil
	}
	u.n += count
	if 0 == length {
		return nil
	}
	if u.n+length > len(u.buffer) {
		u.err = fault.ErrRecordTruncated
		return nil
	}
	data := make([]byte, length)
	copy(data, u.buffer[u.n:u.n+length])
	u.n += length
	return data
}

// String - read a length prefixed string field
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Fixed - read exactly n raw bytes into out
func (u *Unpacker) Fixed(out []byte) {
	if nil != u.err {
		return
	}
	if u.n+len(out) > len(u.buffer) {
		u.err = fault.ErrRecordTruncated
		return
	}
	copy(out, u.buffer[u.n:u.n+len(out)])
	u.n += len(out)
}

// Offset - number of bytes consumed
func (u *Unpacker) Offset() int {
	return u.n
}

// Err - first failure, if any
func (u *Unpacker) Err() error {
	return u.err
}

// Finish - fail if any failure occurred or unread bytes remain
func (u *Unpacker) Finish() error {
	if nil != u.err {
		return u.err
	}
	if u.n != len(u.buffer) {
		return fault.ErrTrailingData
	}
	return nil
}
