// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"strings"
	"time"

	"github.com/bitmark-inc/assetd/digest"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/util"
)

// Flags - lifecycle flag bitset, fixed at issuance
type Flags uint16

// lifecycle flags
const (
	Transferable Flags = 1 << iota
	Convertable
	Limited
	Restricted
	Stakeable
	Inflatable
	Divisible

	allFlags = Transferable | Convertable | Limited | Restricted | Stakeable | Inflatable | Divisible
)

// Type - kind of asset
type Type uint8

// asset types
const (
	Token Type = iota
	Unique
	Equity
	Points
	Credits
	maximumType
)

// String - type name
func (t Type) String() string {
	switch t {
	case Token:
		return "token"
	case Unique:
		return "unique"
	case Equity:
		return "equity"
	case Points:
		return "points"
	case Credits:
		return "credits"
	default:
		return "*unknown*"
	}
}

// fixed field widths
const (
	NameLength   = 10
	SymbolLength = 4
	filler       = '0'

	CurrentVersion = 1

	maxSignatureLength = 1024
)

// record tags
const (
	metadataTag = 1
	recordTag   = 2
)

// ID - content hash of the metadata
type ID = digest.Digest

// Metadata - the issuer supplied description of an asset
type Metadata struct {
	Version        uint32
	Flags          Flags
	Type           Type
	Expiry         uint32 // unix seconds, zero = never
	ContractURL    string
	IssuerAddress  string
	IssuanceScript []byte

	name   [NameLength]byte
	symbol [SymbolLength]byte
}

// Asset - metadata plus derived identity
type Asset struct {
	Metadata
	ID        ID
	Signature []byte // carried but not verified
}

// fill a fixed width field, left padded with the filler character
func pad(out []byte, s string) {
	n := len(out) - len(s)
	for i := 0; i < n; i += 1 {
		out[i] = filler
	}
	copy(out[n:], s)
}

// strip left padding and anything from the first NUL
func trim(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return strings.TrimLeft(string(field), string(filler))
}

// SetName - store a name of 1..NameLength characters
func (m *Metadata) SetName(name string) error {
	if 0 == len(name) {
		return fault.ErrNameTooShort
	}
	if len(name) > NameLength {
		return fault.ErrNameTooLong
	}
	pad(m.name[:], name)
	return nil
}

// SetSymbol - store a symbol of 1..SymbolLength characters
func (m *Metadata) SetSymbol(symbol string) error {
	if 0 == len(symbol) {
		return fault.ErrSymbolTooShort
	}
	if len(symbol) > SymbolLength {
		return fault.ErrSymbolTooLong
	}
	pad(m.symbol[:], symbol)
	return nil
}

// Name - name without padding
func (m *Metadata) Name() string {
	return trim(m.name[:])
}

// Symbol - symbol without padding
func (m *Metadata) Symbol() string {
	return trim(m.symbol[:])
}

// flag predicates
func (m *Metadata) IsTransferable() bool { return 0 != m.Flags&Transferable }
func (m *Metadata) IsConvertable() bool  { return 0 != m.Flags&Convertable }
func (m *Metadata) IsLimited() bool      { return 0 != m.Flags&Limited }
func (m *Metadata) IsRestricted() bool   { return 0 != m.Flags&Restricted }
func (m *Metadata) IsStakeable() bool    { return 0 != m.Flags&Stakeable }
func (m *Metadata) IsInflatable() bool   { return 0 != m.Flags&Inflatable }
func (m *Metadata) IsDivisible() bool    { return 0 != m.Flags&Divisible }

// IsExpired - true once the expiry time has passed
func (m *Metadata) IsExpired(now time.Time) bool {
	return 0 != m.Expiry && now.Unix() >= int64(m.Expiry)
}

// Pack - serialise the metadata
func (m *Metadata) Pack() (util.Packed, error) {
	if m.Type >= maximumType {
		return nil, fault.ErrUnknownAssetType
	}
	if 0 == len(m.Name()) {
		return nil, fault.ErrNameTooShort
	}

	p := util.Packed{}.AppendUint64(metadataTag)
	p = p.AppendUint64(uint64(m.Version))
	p = p.AppendUint64(uint64(m.Flags & allFlags))
	p = p.AppendUint64(uint64(m.Type))
	p = p.AppendUint64(uint64(m.Expiry))
	p = p.AppendFixed(m.name[:])
	p = p.AppendFixed(m.symbol[:])
	p = p.AppendString(m.ContractURL)
	p = p.AppendString(m.IssuerAddress)
	p = p.AppendBytes(m.IssuanceScript)
	return p, nil
}

func unpackMetadata(u *util.Unpacker, m *Metadata) error {
	if metadataTag != u.Uint64() {
		if nil != u.Err() {
			return u.Err()
		}
		return fault.ErrNotAssetRecord
	}
	m.Version = uint32(u.Uint64())
	m.Flags = Flags(u.Uint64()) & allFlags
	m.Type = Type(u.Uint64())
	m.Expiry = uint32(u.Uint64())
	u.Fixed(m.name[:])
	u.Fixed(m.symbol[:])
	m.ContractURL = u.String()
	m.IssuerAddress = u.String()
	m.IssuanceScript = u.Bytes()
	if nil != u.Err() {
		return u.Err()
	}
	if m.Type >= maximumType {
		return fault.ErrUnknownAssetType
	}
	return nil
}

// ComputeID - hash of the packed metadata
func (m *Metadata) ComputeID() (ID, error) {
	p, err := m.Pack()
	if nil != err {
		return ID{}, err
	}
	return digest.NewDigest(p), nil
}

// New - create an asset with its id derived from the metadata
func New(m Metadata) (*Asset, error) {
	if 0 == m.Version {
		m.Version = CurrentVersion
	}
	id, err := m.ComputeID()
	if nil != err {
		return nil, err
	}
	return &Asset{
		Metadata: m,
		ID:       id,
	}, nil
}

// VerifyID - check the stored id matches the metadata
func (a *Asset) VerifyID() error {
	id, err := a.ComputeID()
	if nil != err {
		return err
	}
	if id != a.ID {
		return fault.ErrAssetIDMismatch
	}
	return nil
}

// pack metadata followed by the id
func (a *Asset) packWithoutSignature() (util.Packed, error) {
	p, err := a.Metadata.Pack()
	if nil != err {
		return nil, err
	}
	return p.AppendFixed(a.ID[:]), nil
}

// Pack - serialise metadata, id and signature
func (a *Asset) Pack() (util.Packed, error) {
	if len(a.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	p, err := a.packWithoutSignature()
	if nil != err {
		return nil, err
	}
	return p.AppendBytes(a.Signature), nil
}

// Hash - content hash over the complete asset, used as a record hash
func (a *Asset) Hash() digest.Digest {
	p, err := a.Pack()
	fault.PanicIfError("asset.Hash", err)
	return digest.NewDigest(p)
}

// HashWithoutSignature - content hash over metadata and id
func (a *Asset) HashWithoutSignature() digest.Digest {
	p, err := a.packWithoutSignature()
	fault.PanicIfError("asset.HashWithoutSignature", err)
	return digest.NewDigest(p)
}

// Equal - same identity
func (a *Asset) Equal(other *Asset) bool {
	return a.ID == other.ID
}

// Less - identity order
func (a *Asset) Less(other *Asset) bool {
	return a.ID.Cmp(other.ID) < 0
}

func unpackAsset(u *util.Unpacker, a *Asset) error {
	if err := unpackMetadata(u, &a.Metadata); nil != err {
		return err
	}
	u.Fixed(a.ID[:])
	a.Signature = u.Bytes()
	return u.Err()
}

// Unpack - deserialise a packed asset
func Unpack(buffer []byte) (*Asset, error) {
	a := &Asset{}
	u := util.NewUnpacker(buffer)
	if err := unpackAsset(u, a); nil != err {
		return nil, err
	}
	if err := u.Finish(); nil != err {
		return nil, err
	}
	return a, nil
}
