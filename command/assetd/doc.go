// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Asset ledger daemon
//
// This program keeps the asset, contract and chain alias directories
// of a multi-asset UTXO chain in a LevelDB database, snapshots the
// in-memory caches periodically and follows changes to the ledger
// section of its Lua configuration file.
package main
