// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/chain"
	"github.com/bitmark-inc/assetd/fault"
)

// subsidy asset name and per chain symbols
const subsidyName = "COIN"

var subsidySymbols = map[string]string{
	chain.Live:    "CN",
	chain.Testing: "TCN",
	chain.Local:   "LCN",
}

// SubsidyFor - the native coin of a chain
//
// each chain gets a distinct symbol and therefore a distinct id
func SubsidyFor(chainName string) (*asset.Asset, error) {
	symbol, ok := subsidySymbols[chainName]
	if !ok {
		return nil, fault.ErrInvalidChain
	}

	m := asset.Metadata{
		Version: asset.CurrentVersion,
		Flags:   asset.Transferable | asset.Convertable | asset.Divisible,
		Type:    asset.Token,
	}
	if err := m.SetName(subsidyName); nil != err {
		return nil, err
	}
	if err := m.SetSymbol(symbol); nil != err {
		return nil, err
	}
	return asset.New(m)
}
