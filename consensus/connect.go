// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"github.com/bitmark-inc/assetd/amount"
	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/coin"
	"github.com/bitmark-inc/assetd/contract"
	"github.com/bitmark-inc/assetd/fault"
)

// ConnectTransaction - check a transaction and register the assets and
// contracts it issues
//
// the ledger write lock is held throughout so two transactions cannot
// both claim the same name
func (v *Validator) ConnectTransaction(tx *Transaction, view coin.View, spendHeight uint32) (amount.Amount, error) {
	v.ledger.Lock()
	defer v.ledger.Unlock()

	fee, in, err := v.check(tx, view, spendHeight)
	if nil != err {
		return 0, err
	}
	if 0 == len(tx.Assets) {
		return fee, nil
	}

	txHash, err := tx.Hash()
	if nil != err {
		return 0, err
	}

	outputAssets := amount.Map{}
	for _, out := range tx.Outputs {
		outputAssets[out.Asset] += out.Amount
	}

	issuingScript := []byte(nil)
	if len(in.coins) > 0 {
		issuingScript = in.coins[0].Script
	}
	subsidyIn := in.assets[v.ledger.SubsidyAsset().ID]

	for i := range tx.Assets {
		a := tx.Assets[i]
		if v.ledger.AssetExists(a.ID) {
			continue
		}
		r := &asset.Record{
			Asset:         a,
			IssuingScript: issuingScript,
			InputAmount:   subsidyIn,
			IssuedAmount:  outputAssets[a.ID],
			TxHash:        txHash,
			Time:          tx.Time,
		}
		if err := v.ledger.RegisterAsset(r); nil != err {
			// checked above under the same lock
			fault.Panicf("register asset: %s  error: %s", a.Name(), err)
		}
	}

	for i := range tx.Contracts {
		r := &contract.Record{
			Contract: tx.Contracts[i],
			TxHash:   txHash,
			Time:     tx.Time,
		}
		if err := v.ledger.RegisterContract(r); nil != err && !fault.IsErrExists(err) {
			return 0, err
		}
	}

	v.log.Infof("connected: %s  issued: %d  fee: %s", txHash, len(tx.Assets), fee)
	return fee, nil
}
