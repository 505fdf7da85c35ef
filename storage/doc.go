// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.  The pools
// struct is the single place where tags are assigned.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++           = concatenation of byte data
// 3. name         = asset name, contract name or chain alias (variable length)
// 4. *record*     = version tagged packed record
//
// Assets:
//
//	A ++ name                  - registered asset
//	                             data: packed asset record
//
// Contracts:
//
//	G ++ name                  - registered contract
//	                             data: packed contract record
//
// Chain aliases:
//
//	I ++ alias                 - registered chain alias
//	                             data: packed chain alias record
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
