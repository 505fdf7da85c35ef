// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/bitmark-inc/assetd/digest"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/util"
)

const (
	aliasRecordTag     = 5
	aliasRecordVersion = 1

	maxAliasLength = 64
)

// AliasRecord - directory entry mapping an alias to a chain id
type AliasRecord struct {
	ChainID ID
	TxHash  digest.Digest
	Time    uint32
}

// ValidAlias - an alias is 1..64 bytes
func ValidAlias(alias string) error {
	if 0 == len(alias) {
		return fault.ErrNameTooShort
	}
	if len(alias) > maxAliasLength {
		return fault.ErrNameTooLong
	}
	return nil
}

// PackAlias - serialise a directory record
func PackAlias(r *AliasRecord) (util.Packed, error) {
	p := util.Packed{}.AppendUint64(aliasRecordTag)
	p = p.AppendUint64(aliasRecordVersion)
	p = p.AppendFixed(r.ChainID[:])
	p = p.AppendFixed(r.TxHash[:])
	p = p.AppendUint64(uint64(r.Time))
	return p, nil
}

// UnpackAlias - deserialise a directory record
func UnpackAlias(buffer []byte) (*AliasRecord, error) {
	u := util.NewUnpacker(buffer)
	if aliasRecordTag != u.Uint64() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.ErrNotChainAliasRecord
	}
	if aliasRecordVersion != u.Uint64() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.ErrRecordVersion
	}
	r := &AliasRecord{}
	u.Fixed(r.ChainID[:])
	u.Fixed(r.TxHash[:])
	r.Time = uint32(u.Uint64())
	if err := u.Finish(); nil != err {
		return nil, err
	}
	return r, nil
}
