// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// AppendVarint64 - append the Varint64 form of value
//
// seven bits per byte, least significant first, with the top bit set
// while more bytes follow; the ninth byte holds the final eight bits
//
//	byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
//	…
//	byte 8:  ext | B55 | B54 | B53 | B52 | B51 | B50 | B49
//	byte 9:  B63 | B62 | B61 | B60 | B59 | B58 | B57 | B56
func AppendVarint64(buffer []byte, value uint64) []byte {
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
func ToVarint64(value uint64) []byte {
	return AppendVarint64(make([]byte, 0, Varint64MaximumBytes), value)
}

// FromVarint64 - decode a Varint64 from the start of buffer
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	for i, b := range buffer {
		shift := uint(7 * i)
		if Varint64MaximumBytes-1 == i {
			return value | uint64(b)<<shift, i + 1
		}
		value |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return value, i + 1
		}
	}
	return 0, 0
}

// BoundedVarint64 - decode a Varint64 that must lie in 0..maximum
//
// returns 0, 0 if truncated or out of range
func BoundedVarint64(buffer []byte, maximum int) (int, int) {
	value, count := FromVarint64(buffer)
	if 0 == count || maximum < 0 || value > uint64(maximum) {
		return 0, 0
	}
	return int(value), count
}
