// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coin - unspent outputs as seen by the validator
package coin

import (
	"fmt"
	"sync"

	"github.com/bitmark-inc/assetd/amount"
	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/digest"
)

// OutPoint - reference to one output of a transaction
type OutPoint struct {
	TxHash digest.Digest
	Index  uint32
}

// String - hash:index
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxHash, o.Index)
}

// Coin - an unspent output
type Coin struct {
	Asset      asset.ID
	Amount     amount.Amount
	Script     []byte
	Height     uint32
	IsCoinbase bool
}

//go:generate mockgen -source=coin.go -destination=mocks/view.go -package=mocks

// View - lookup of unspent outputs
//
// supplied by the UTXO set, found is false for a missing or spent output
type View interface {
	AccessCoin(outpoint OutPoint) (Coin, bool)
}

// MemoryView - a map backed view
type MemoryView struct {
	sync.RWMutex
	coins map[OutPoint]Coin
}

// NewMemoryView - an empty view
func NewMemoryView() *MemoryView {
	return &MemoryView{
		coins: make(map[OutPoint]Coin),
	}
}

// AddCoin - add or replace an unspent output
func (v *MemoryView) AddCoin(outpoint OutPoint, c Coin) {
	v.Lock()
	defer v.Unlock()
	v.coins[outpoint] = c
}

// SpendCoin - remove an output, false if it was not present
func (v *MemoryView) SpendCoin(outpoint OutPoint) bool {
	v.Lock()
	defer v.Unlock()
	_, ok := v.coins[outpoint]
	delete(v.coins, outpoint)
	return ok
}

// AccessCoin - implements View
func (v *MemoryView) AccessCoin(outpoint OutPoint) (Coin, bool) {
	v.RLock()
	defer v.RUnlock()
	c, ok := v.coins[outpoint]
	return c, ok
}

// Size - number of unspent outputs
func (v *MemoryView) Size() int {
	v.RLock()
	defer v.RUnlock()
	return len(v.coins)
}
