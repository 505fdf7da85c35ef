// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/util"
)

// enumeration of address kinds
const (
	Nothing    = iota // zero kind **Just for Testing**
	ED25519    = iota
	KeyHash    = iota
	ScriptHash = iota
	// end of list (one greater than last item)
	kindLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4
	hashLength     = 20

	// bits in variant code starting from LSB
	addressCode = 0x01
	testCode    = 0x02

	kindShift = 4 // shift 4 bits to get kind
)

// Address - the decoded form
type Address struct {
	Kind    int
	Test    bool
	Payload []byte
}

// payload length for each kind
func payloadLength(kind int) int {
	switch kind {
	case Nothing:
		return 2
	case ED25519:
		return ed25519.PublicKeySize
	case KeyHash, ScriptHash:
		return hashLength
	default:
		return -1
	}
}

// FromBase58 - decode and verify an address string
func FromBase58(encoded string) (*Address, error) {
	decoded, err := base58.Decode(encoded)
	if nil != err || 0 == len(decoded) {
		return nil, fault.ErrCannotDecodeAddress
	}

	variant, variantLength := util.FromVarint64(decoded)
	if 0 == variantLength || variant&addressCode != addressCode {
		return nil, fault.ErrNotAddress
	}

	kind := int(variant >> kindShift)
	if kind >= kindLimit {
		return nil, fault.ErrInvalidKeyType
	}

	payloadEnd := len(decoded) - checksumLength
	if payloadEnd-variantLength != payloadLength(kind) {
		return nil, fault.ErrInvalidKeyLength
	}

	checksum := sha3.Sum256(decoded[:payloadEnd])
	if !bytes.Equal(checksum[:checksumLength], decoded[payloadEnd:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return &Address{
		Kind:    kind,
		Test:    0 != variant&testCode,
		Payload: decoded[variantLength:payloadEnd],
	}, nil
}

// Bytes - variant followed by payload
func (a *Address) Bytes() []byte {
	variant := byte(a.Kind<<kindShift) | addressCode
	if a.Test {
		variant |= testCode
	}
	return append([]byte{variant}, a.Payload...)
}

// String - base58 encoding with checksum
func (a *Address) String() string {
	buffer := a.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an address to its Base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert Base58 JSON form to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = *decoded
	return nil
}
