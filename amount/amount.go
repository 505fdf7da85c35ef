// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"fmt"
)

// Amount - a signed count of base units of one asset
type Amount int64

// base units
const (
	Coin = Amount(100000000)
	Cent = Amount(1000000)
)

// MaxMoney - upper bound on any single amount or total
const MaxMoney = 21000000 * Coin

// MoneyRange - true if 0 <= value <= MaxMoney
func MoneyRange(value Amount) bool {
	return value >= 0 && value <= MaxMoney
}

// String - decimal with eight fractional digits
func (value Amount) String() string {
	sign := ""
	v := int64(value)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%08d", sign, v/int64(Coin), v%int64(Coin))
}
