// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/assetd/fault"
)

// script opcodes
const (
	opDup         = 0x76
	opHash160     = 0xa9
	opEqual       = 0x87
	opEqualVerify = 0x88
	opCheckSig    = 0xac
)

//go:generate mockgen -source=script.go -destination=mocks/codec.go -package=mocks

// Codec - turns an output script into the address it pays
type Codec interface {
	FromScript(script []byte) (string, error)
}

// Base58Codec - the default codec
type Base58Codec struct {
	Test bool
}

// FromScript - address string of a standard script
func (c Base58Codec) FromScript(script []byte) (string, error) {
	a, err := FromScript(script, c.Test)
	if nil != err {
		return "", err
	}
	return a.String(), nil
}

// FromScript - decode a standard script
func FromScript(script []byte, test bool) (*Address, error) {
	n := len(script)
	switch {
	case 2+ed25519.PublicKeySize == n &&
		ed25519.PublicKeySize == script[0] &&
		opCheckSig == script[n-1]:
		return newAddress(ED25519, test, script[1:n-1]), nil

	case 5+hashLength == n &&
		opDup == script[0] && opHash160 == script[1] && hashLength == script[2] &&
		opEqualVerify == script[n-2] && opCheckSig == script[n-1]:
		return newAddress(KeyHash, test, script[3:n-2]), nil

	case 3+hashLength == n &&
		opHash160 == script[0] && hashLength == script[1] &&
		opEqual == script[n-1]:
		return newAddress(ScriptHash, test, script[2:n-1]), nil

	default:
		return nil, fault.ErrInvalidScript
	}
}

func newAddress(kind int, test bool, payload []byte) *Address {
	p := make([]byte, len(payload))
	copy(p, payload)
	return &Address{
		Kind:    kind,
		Test:    test,
		Payload: p,
	}
}

// Script - the standard script paying this address
func (a *Address) Script() ([]byte, error) {
	if len(a.Payload) != payloadLength(a.Kind) {
		return nil, fault.ErrInvalidKeyLength
	}
	switch a.Kind {
	case ED25519:
		s := append([]byte{ed25519.PublicKeySize}, a.Payload...)
		return append(s, opCheckSig), nil
	case KeyHash:
		s := append([]byte{opDup, opHash160, hashLength}, a.Payload...)
		return append(s, opEqualVerify, opCheckSig), nil
	case ScriptHash:
		s := append([]byte{opHash160, hashLength}, a.Payload...)
		return append(s, opEqual), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}
