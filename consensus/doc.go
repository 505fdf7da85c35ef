// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consensus - the asset lifecycle rules applied to the inputs
// and outputs of a transaction
//
// every rejection is a fault.InvalidError whose text is the stable
// reason code. An asset transaction spends exactly one asset and may
// name at most one other asset in its outputs, either an existing
// asset being converted into or reissued, or a new asset being issued
// from the subsidy coin.
//
// checks run under the ledger read lock; ConnectTransaction holds the
// write lock across the check and the registration of new assets.
package consensus
