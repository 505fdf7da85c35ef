// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

// DefaultCoinbaseMaturity - blocks before a coinbase output may be spent
const DefaultCoinbaseMaturity = 100

// Parameters - rule settings, supplied by the node embedding the
// validator
type Parameters struct {
	CoinbaseMaturity uint32 `json:"coinbase_maturity"`

	// an existing non-inflatable asset in the outputs is rejected
	// only when more of it leaves than entered
	RejectOnlyNetIssuance bool `json:"reject_only_net_issuance"`
}

// DefaultParameters - the values used when a field is absent
func DefaultParameters() Parameters {
	return Parameters{
		CoinbaseMaturity:      DefaultCoinbaseMaturity,
		RejectOnlyNetIssuance: false,
	}
}
