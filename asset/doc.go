// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - identity of user issued assets
//
// An asset is fixed at issuance: its metadata (flags, type, expiry,
// name, symbol, contract url, issuer address and issuance script) is
// hashed to give the asset id, which is the sole basis of equality
// and ordering.
//
// Packed layout, all integers Varint64, strings and byte fields
// prefixed by Varint64(length):
//
//	metadata:  tag(1) ++ version ++ flags ++ type ++ expiry
//	           ++ name[10] ++ symbol[4] ++ contract url ++ issuer ++ script
//	asset:     metadata ++ id[32] ++ signature
//	record:    tag(2) ++ version ++ asset ++ issuing script ++ input amount
//	           ++ issued amount ++ tx hash[32] ++ time
//
// name and symbol are left padded with '0' to their fixed width.
package asset
