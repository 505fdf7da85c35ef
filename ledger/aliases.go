// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/assetd/chain"
	"github.com/bitmark-inc/assetd/directory"
	"github.com/bitmark-inc/assetd/fault"
)

// RegisterChainAlias - name a chain
//
// aliases are rare and final so they go straight to the store
func (l *Ledger) RegisterChainAlias(alias string, r *chain.AliasRecord) error {
	if err := chain.ValidAlias(alias); nil != err {
		return err
	}
	if l.aliases.Exists(alias) {
		return fault.ErrChainAliasAlreadyRegistered
	}
	if 0 == r.Time {
		r.Time = now()
	}
	if err := l.aliases.Write(alias, r); nil != err {
		return err
	}
	l.log.Infof("registered chain alias: %s  chain: %s", alias, r.ChainID)
	return nil
}

// GetChainAlias - look up an alias
func (l *Ledger) GetChainAlias(alias string) (*chain.AliasRecord, error) {
	r, err := l.aliases.Get(alias)
	if nil != checkLookup("ledger: chain alias: "+alias, err, fault.ErrChainAliasNotFound) {
		return nil, err
	}
	return r, nil
}

// ListChainAliases - stored alias records, see directory.List
func (l *Ledger) ListChainAliases(filter string, count int, start int) ([]directory.Item[chain.AliasRecord], error) {
	return l.aliases.List(filter, count, start)
}
