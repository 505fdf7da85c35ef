// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"github.com/bitmark-inc/assetd/address"
	"github.com/bitmark-inc/assetd/coin"
)

// the address that funded a transaction, decoded on first use
type inputIssuer struct {
	codec   address.Codec
	coins   []coin.Coin
	decoded bool
	address string
	ok      bool
}

// single - the one address all inputs were paid to
//
// ok is false if the inputs come from several addresses or any input
// script cannot be decoded
func (i *inputIssuer) single() (string, bool) {
	if i.decoded {
		return i.address, i.ok
	}
	i.decoded = true

	for n, c := range i.coins {
		a, err := i.codec.FromScript(c.Script)
		if nil != err {
			return "", false
		}
		if 0 == n {
			i.address = a
		} else if a != i.address {
			return "", false
		}
	}
	i.ok = len(i.coins) > 0
	if !i.ok {
		i.address = ""
	}
	return i.address, i.ok
}
