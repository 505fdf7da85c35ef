// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - issuer metadata backing one or more assets
//
// A contract is keyed by the asset name it backs and names the
// canonical issuing address that restricted and inflatable assets
// must be spent from.
package contract

import (
	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/digest"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/util"
)

const (
	contractTag   = 3
	recordTag     = 4
	recordVersion = 1

	CurrentVersion = 1
)

// Contract - issuer metadata
type Contract struct {
	Version     uint32
	Name        string // asset name this contract backs
	Address     string // canonical issuing address
	URL         string
	Description string
}

// Record - directory entry for a registered contract
type Record struct {
	Contract Contract
	TxHash   digest.Digest
	Time     uint32
}

// Pack - serialise a contract
func (c *Contract) Pack() (util.Packed, error) {
	if 0 == len(c.Name) {
		return nil, fault.ErrNameTooShort
	}
	if len(c.Name) > asset.NameLength {
		return nil, fault.ErrNameTooLong
	}
	p := util.Packed{}.AppendUint64(contractTag)
	p = p.AppendUint64(uint64(c.Version))
	p = p.AppendString(c.Name)
	p = p.AppendString(c.Address)
	p = p.AppendString(c.URL)
	p = p.AppendString(c.Description)
	return p, nil
}

// Hash - content hash of the packed contract
func (c *Contract) Hash() digest.Digest {
	p, err := c.Pack()
	fault.PanicIfError("contract.Hash", err)
	return digest.NewDigest(p)
}

func unpackContract(u *util.Unpacker, c *Contract) error {
	if contractTag != u.Uint64() {
		if nil != u.Err() {
			return u.Err()
		}
		return fault.ErrNotContractRecord
	}
	c.Version = uint32(u.Uint64())
	c.Name = u.String()
	c.Address = u.String()
	c.URL = u.String()
	c.Description = u.String()
	return u.Err()
}

// Unpack - deserialise a packed contract
func Unpack(buffer []byte) (*Contract, error) {
	c := &Contract{}
	u := util.NewUnpacker(buffer)
	if err := unpackContract(u, c); nil != err {
		return nil, err
	}
	if err := u.Finish(); nil != err {
		return nil, err
	}
	return c, nil
}

// PackRecord - serialise a directory record
func PackRecord(r *Record) (util.Packed, error) {
	packedContract, err := r.Contract.Pack()
	if nil != err {
		return nil, err
	}
	p := util.Packed{}.AppendUint64(recordTag)
	p = p.AppendUint64(recordVersion)
	p = p.AppendBytes(packedContract)
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
		return nil, fault.ErrNotContractRecord
	}
	if recordVersion != u.Uint64() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.ErrRecordVersion
	}
	packedContract := u.Bytes()
	r := &Record{}
	u.Fixed(r.TxHash[:])
	r.Time = uint32(u.Uint64())
	if err := u.Finish(); nil != err {
		return nil, err
	}

	c, err := Unpack(packedContract)
	if nil != err {
		return nil, err
	}
	r.Contract = *c
	return r, nil
}
