// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/chain"
	"github.com/bitmark-inc/assetd/contract"
	"github.com/bitmark-inc/assetd/directory"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/storage"
)

// Ledger - the directories of one node
type Ledger struct {
	sync.RWMutex

	log *logger.L

	assets    *directory.Directory[asset.Record]
	contracts *directory.Directory[contract.Record]
	aliases   *directory.Directory[chain.AliasRecord]

	subsidy *asset.Asset

	index assetIndex

	// snapshot interval changes
	interval chan time.Duration
}

// New - create the directories over an open store
//
// nothing is read until Load
func New(store *storage.Store, configuration *Configuration, subsidy *asset.Asset) (*Ledger, error) {
	if nil == store || nil == subsidy {
		return nil, fault.ErrNotInitialised
	}
	if err := configuration.Validate(); nil != err {
		return nil, err
	}
	if err := subsidy.VerifyID(); nil != err {
		return nil, err
	}

	l := &Ledger{
		log: logger.New("ledger"),
		assets: directory.New[asset.Record]("assets", store.Pool.Assets,
			configuration.AssetCacheSize,
			asset.PackRecord, asset.UnpackRecord,
			fault.ErrAssetNotFound),
		contracts: directory.New[contract.Record]("contracts", store.Pool.Contracts,
			configuration.ContractCacheSize,
			contract.PackRecord, contract.UnpackRecord,
			fault.ErrContractNotFound),
		aliases: directory.New[chain.AliasRecord]("aliases", store.Pool.ChainAliases,
			configuration.AliasCacheSize,
			chain.PackAlias, chain.UnpackAlias,
			fault.ErrChainAliasNotFound),
		subsidy:  subsidy,
		interval: make(chan time.Duration, 1),
	}

	l.log.Infof("subsidy asset: %s  id: %s", subsidy.Name(), subsidy.ID)
	return l, nil
}

// Load - fill all caches from the store and index the assets
func (l *Ledger) Load() error {
	l.Lock()
	defer l.Unlock()

	if err := l.assets.Load(); nil != err {
		return err
	}
	if err := l.contracts.Load(); nil != err {
		return err
	}
	if err := l.aliases.Load(); nil != err {
		return err
	}

	l.index.Lock()
	l.buildIndex(&l.index)
	l.index.Unlock()
	return nil
}

// Dump - write all cached records to the store
func (l *Ledger) Dump() error {
	l.Lock()
	defer l.Unlock()

	if err := l.assets.Dump(); nil != err {
		return err
	}
	if err := l.contracts.Dump(); nil != err {
		return err
	}
	return l.aliases.Dump()
}

// Resize - apply new cache sizes
func (l *Ledger) Resize(configuration *Configuration) error {
	if err := configuration.Validate(); nil != err {
		return err
	}

	l.Lock()
	defer l.Unlock()

	if err := l.assets.SetCapacity(configuration.AssetCacheSize); nil != err {
		return err
	}
	if err := l.contracts.SetCapacity(configuration.ContractCacheSize); nil != err {
		return err
	}
	return l.aliases.SetCapacity(configuration.AliasCacheSize)
}

// current time as stored in records
func now() uint32 {
	return uint32(time.Now().Unix())
}
