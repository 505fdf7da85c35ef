// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - derive the address that an output script pays
//
// encoded form: Base58(variant ++ payload ++ SHA3-256(variant ++ payload)[:4])
//
// variant bits, from LSB:
//
//	0x01  always set
//	0x02  test network
//	0xf0  kind: 0 nothing, 1 ed25519 key, 2 key hash, 3 script hash
//
// recognised scripts:
//
//	pay to key:          0x20 key[32] OP_CHECKSIG
//	pay to key hash:     OP_DUP OP_HASH160 0x14 hash[20] OP_EQUALVERIFY OP_CHECKSIG
//	pay to script hash:  OP_HASH160 0x14 hash[20] OP_EQUAL
package address
