// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/directory"
	"github.com/bitmark-inc/assetd/fault"
)

// IsSubsidy - is this the chain's own coin
func (l *Ledger) IsSubsidy(id asset.ID) bool {
	return id == l.subsidy.ID
}

// SubsidyAsset - the chain's own coin
func (l *Ledger) SubsidyAsset() *asset.Asset {
	return l.subsidy
}

// AssetExists - is an asset with this id known
func (l *Ledger) AssetExists(id asset.ID) bool {
	if l.IsSubsidy(id) {
		return true
	}
	x := l.lockIndex()
	defer x.Unlock()
	_, ok := x.byID[id]
	return ok
}

// AssetNameExists - is the text already used as the name or the symbol
// of a known asset, ignoring case
func (l *Ledger) AssetNameExists(text string) bool {
	if "" == text {
		return false
	}
	if nameOrSymbol(text, l.subsidy) {
		return true
	}
	x := l.lockIndex()
	defer x.Unlock()
	_, ok := x.nameOf(text)
	return ok
}

func nameOrSymbol(text string, a *asset.Asset) bool {
	return strings.EqualFold(text, a.Name()) || strings.EqualFold(text, a.Symbol())
}

// GetAsset - find an asset by name or symbol, ignoring case
func (l *Ledger) GetAsset(text string) (*asset.Asset, error) {
	if nameOrSymbol(text, l.subsidy) {
		return l.subsidy, nil
	}
	r, err := l.GetAssetRecord(text)
	if nil != err {
		return nil, err
	}
	return &r.Asset, nil
}

// GetAssetRecord - the registration record of an asset by name or
// symbol, ignoring case
func (l *Ledger) GetAssetRecord(text string) (*asset.Record, error) {
	x := l.lockIndex()
	name, ok := x.nameOf(text)
	x.Unlock()
	if !ok {
		return nil, fault.ErrAssetNotFound
	}
	return l.getAssetRecord(name)
}

// GetAssetByID - find an asset by its id
func (l *Ledger) GetAssetByID(id asset.ID) (*asset.Asset, error) {
	if l.IsSubsidy(id) {
		return l.subsidy, nil
	}
	x := l.lockIndex()
	name, ok := x.byID[id]
	x.Unlock()
	if !ok {
		return nil, fault.ErrAssetNotFound
	}
	r, err := l.getAssetRecord(name)
	if nil != err {
		return nil, err
	}
	return &r.Asset, nil
}

// keyed fetch of an indexed name
func (l *Ledger) getAssetRecord(name string) (*asset.Record, error) {
	r, err := l.assets.Get(name)
	if nil != checkLookup("ledger: asset: "+name, err, fault.ErrAssetNotFound) {
		return nil, err
	}
	return r, nil
}

// GetAllAssets - every registered asset in name order, the subsidy asset
// is not included
func (l *Ledger) GetAllAssets() ([]*asset.Asset, error) {
	items, err := l.assets.All()
	if nil != err {
		return nil, err
	}
	assets := make([]*asset.Asset, 0, len(items))
	for _, item := range items {
		assets = append(assets, &item.Record.Asset)
	}
	return assets, nil
}

// ListAssets - stored asset records, see directory.List
func (l *Ledger) ListAssets(filter string, count int, start int) ([]directory.Item[asset.Record], error) {
	return l.assets.List(filter, count, start)
}

// RegisterAsset - add a newly issued asset
//
// the record is cached and reaches the store with the next snapshot
func (l *Ledger) RegisterAsset(r *asset.Record) error {
	a := &r.Asset
	if err := a.VerifyID(); nil != err {
		return err
	}
	if nameOrSymbol(a.Name(), l.subsidy) || nameOrSymbol(a.Symbol(), l.subsidy) || l.IsSubsidy(a.ID) {
		return fault.ErrAssetAlreadyRegistered
	}

	x := l.lockIndex()
	defer x.Unlock()

	_, nameUsed := x.nameOf(a.Name())
	_, symbolUsed := x.nameOf(a.Symbol())
	_, idUsed := x.byID[a.ID]
	if nameUsed || symbolUsed || idUsed {
		return fault.ErrAssetAlreadyRegistered
	}
	if 0 == r.Time {
		r.Time = now()
	}
	l.assets.Put(a.Name(), r)
	x.add(a.Name(), a)

	l.log.Infof("registered asset: %s (%s)  id: %s", a.Name(), a.Symbol(), a.ID)
	return nil
}
