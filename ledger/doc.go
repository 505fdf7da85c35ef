// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the asset, contract and chain alias directories of
// one node plus its subsidy asset
//
// a Ledger is created at startup over an open store and passed to the
// validator and to block processing. Callers that check and then
// register must hold the ledger lock across both steps: the validator
// takes the read lock, ConnectTransaction and Dump take the write lock.
package ledger
