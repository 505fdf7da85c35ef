// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"

	"github.com/bitmark-inc/assetd/contract"
	"github.com/bitmark-inc/assetd/digest"
	"github.com/bitmark-inc/assetd/directory"
	"github.com/bitmark-inc/assetd/fault"
)

// GetContract - the contract backing an asset name, ignoring case
func (l *Ledger) GetContract(name string) (*contract.Contract, error) {
	r, err := l.contracts.Get(name)
	if nil == err {
		return &r.Contract, nil
	}
	checkLookup("ledger: contract: "+name, err, fault.ErrContractNotFound)

	// stored under a different case
	_, r, err = l.contracts.Find(func(key string, r *contract.Record) bool {
		return strings.EqualFold(name, key)
	})
	if nil != checkLookup("ledger: contract: "+name, err, fault.ErrContractNotFound) {
		return nil, err
	}
	return &r.Contract, nil
}

// GetContractByHash - find a contract by its content hash
func (l *Ledger) GetContractByHash(hash digest.Digest) (*contract.Contract, error) {
	_, r, err := l.contracts.Find(func(key string, r *contract.Record) bool {
		return hash == r.Contract.Hash()
	})
	if nil != checkLookup("ledger: contract hash", err, fault.ErrContractNotFound) {
		return nil, err
	}
	return &r.Contract, nil
}

// ListContracts - stored contract records, see directory.List
func (l *Ledger) ListContracts(filter string, count int, start int) ([]directory.Item[contract.Record], error) {
	return l.contracts.List(filter, count, start)
}

// RegisterContract - add a contract, keyed by the asset name it backs
func (l *Ledger) RegisterContract(r *contract.Record) error {
	if _, err := r.Contract.Pack(); nil != err {
		return err
	}
	if _, err := l.GetContract(r.Contract.Name); nil == err {
		return fault.ErrContractAlreadyRegistered
	}
	if 0 == r.Time {
		r.Time = now()
	}
	l.contracts.Put(r.Contract.Name, r)
	l.log.Infof("registered contract: %s  issuer: %s", r.Contract.Name, r.Contract.Address)
	return nil
}
