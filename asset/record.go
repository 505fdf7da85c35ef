// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/assetd/amount"
	"github.com/bitmark-inc/assetd/digest"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/util"
)

const recordVersion = 1

// Record - directory entry for a registered asset
type Record struct {
	Asset         Asset
	IssuingScript []byte
	InputAmount   amount.Amount // subsidy spent by the issuing transaction
	IssuedAmount  amount.Amount // units created at issuance
	TxHash        digest.Digest // registering transaction
	Time          uint32
}

// PackRecord - serialise a directory record
func PackRecord(r *Record) (util.Packed, error) {
	packedAsset, err := r.Asset.Pack()
	if nil != err {
		return nil, err
	}
	p := util.Packed{}.AppendUint64(recordTag)
	p = p.AppendUint64(recordVersion)
	p = p.AppendBytes(packedAsset)
	p = p.AppendBytes(r.IssuingScript)
	p = p.AppendInt64(int64(r.InputAmount))
	p = p.AppendInt64(int64(r.IssuedAmount))
	p = p.AppendFixed(r.TxHash[:])
	p = p.AppendUint64(uint64(r.Time))
	return p, nil
}

// UnpackRecord - deserialise a directory record
func UnpackRecord(buffer []byte) (*Record, error) {
	u := util.NewUnpacker(buffer)
	if recordTag != u.Uint64() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.ErrNotAssetRecord
	}
	if recordVersion != u.Uint64() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.ErrRecordVersion
	}

	packedAsset := u.Bytes()
	r := &Record{
		IssuingScript: u.Bytes(),
		InputAmount:   amount.Amount(u.Int64()),
		IssuedAmount:  amount.Amount(u.Int64()),
	}
	u.Fixed(r.TxHash[:])
	r.Time = uint32(u.Uint64())
	if err := u.Finish(); nil != err {
		return nil, err
	}

	a, err := Unpack(packedAsset)
	if nil != err {
		return nil, err
	}
	r.Asset = *a
	return r, nil
}
