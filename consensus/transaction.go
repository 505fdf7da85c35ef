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
	"github.com/bitmark-inc/assetd/digest"
	"github.com/bitmark-inc/assetd/util"
)

// transaction versions
const (
	LegacyVersion = 1
	AssetVersion  = 2
)

// index of the null outpoint spent by a coinbase
const coinbaseIndex = 0xffffffff

// Output - value sent to a script
type Output struct {
	Asset  asset.ID
	Amount amount.Amount
	Script []byte
}

// Transaction - the parts of a transaction the asset rules examine
type Transaction struct {
	Version uint32
	Inputs  []coin.OutPoint
	Outputs []Output

	// assets issued by this transaction and contracts backing them
	Assets    []asset.Asset
	Contracts []contract.Contract

	Time uint32
}

// IsAssetAware - uses the asset rules rather than the legacy value check
func (tx *Transaction) IsAssetAware() bool {
	return tx.Version >= AssetVersion
}

// IsCoinbase - spends only the null outpoint
func (tx *Transaction) IsCoinbase() bool {
	return 1 == len(tx.Inputs) &&
		tx.Inputs[0].TxHash.IsZero() &&
		coinbaseIndex == tx.Inputs[0].Index
}

// declared asset by id
func (tx *Transaction) declared(id asset.ID) *asset.Asset {
	for i := range tx.Assets {
		if id == tx.Assets[i].ID {
			return &tx.Assets[i]
		}
	}
	return nil
}

// Pack - serialise for hashing
func (tx *Transaction) Pack() (util.Packed, error) {
	p := util.Packed{}.AppendUint64(uint64(tx.Version))

	p = p.AppendUint64(uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		p = p.AppendFixed(in.TxHash[:])
		p = p.AppendUint64(uint64(in.Index))
	}

	p = p.AppendUint64(uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		p = p.AppendFixed(out.Asset[:])
		p = p.AppendInt64(int64(out.Amount))
		p = p.AppendBytes(out.Script)
	}

	p = p.AppendUint64(uint64(len(tx.Assets)))
	for i := range tx.Assets {
		packed, err := tx.Assets[i].Pack()
		if nil != err {
			return nil, err
		}
		p = p.AppendBytes(packed)
	}

	p = p.AppendUint64(uint64(len(tx.Contracts)))
	for i := range tx.Contracts {
		packed, err := tx.Contracts[i].Pack()
		if nil != err {
			return nil, err
		}
		p = p.AppendBytes(packed)
	}

	return p.AppendUint64(uint64(tx.Time)), nil
}

// Hash - digest of the packed transaction
func (tx *Transaction) Hash() (digest.Digest, error) {
	p, err := tx.Pack()
	if nil != err {
		return digest.Digest{}, err
	}
	return digest.NewDigest(p), nil
}
