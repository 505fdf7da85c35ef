// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"sort"
	"strings"

	"github.com/bitmark-inc/assetd/digest"
	"github.com/bitmark-inc/assetd/fault"
)

// Map - per asset amounts keyed by asset id
//
// an absent key is zero; stored zeros are treated exactly like absent keys
// by comparison and range tests
type Map map[digest.Digest]Amount

// Clone - independent copy
func (m Map) Clone() Map {
	result := make(Map, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Assets - the keys present, in byte order
func (m Map) Assets() []digest.Digest {
	keys := make([]digest.Digest, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Cmp(keys[j]) < 0
	})
	return keys
}

// Add - component-wise sum over the union of keys
func Add(a Map, b Map) Map {
	result := a.Clone()
	for k, v := range b {
		result[k] += v
	}
	return result
}

// Sub - component-wise difference over the union of keys
func Sub(a Map, b Map) Map {
	result := a.Clone()
	for k, v := range b {
		result[k] -= v
	}
	return result
}

// MulScalar - multiply every component
func MulScalar(a Map, s Amount) Map {
	result := make(Map, len(a))
	for k, v := range a {
		result[k] = v * s
	}
	return result
}

// DivScalar - truncating division of every component
func DivScalar(a Map, s Amount) (Map, error) {
	if 0 == s {
		return nil, fault.ErrDivisionByZero
	}
	result := make(Map, len(a))
	for k, v := range a {
		result[k] = v / s
	}
	return result, nil
}

// ModScalar - remainder of every component
func ModScalar(a Map, s Amount) (Map, error) {
	if 0 == s {
		return nil, fault.ErrDivisionByZero
	}
	result := make(Map, len(a))
	for k, v := range a {
		result[k] = v % s
	}
	return result, nil
}

// Mul - component-wise product over the intersection of keys
//
// a key present in only one operand is dropped from the result
func Mul(a Map, b Map) Map {
	result := make(Map)
	for k, v := range a {
		if w, ok := b[k]; ok {
			result[k] = v * w
		}
	}
	return result
}

// Div - component-wise truncating quotient over the intersection of keys
//
// a key present in only one operand is dropped from the result
func Div(a Map, b Map) (Map, error) {
	result := make(Map)
	for k, v := range a {
		w, ok := b[k]
		if !ok {
			continue
		}
		if 0 == w {
			return nil, fault.ErrDivisionByZero
		}
		result[k] = v / w
	}
	return result, nil
}

// visit every key of the union with zero defaults
func union(a Map, b Map, f func(x Amount, y Amount)) {
	for k, v := range a {
		f(v, b[k])
	}
	for k, v := range b {
		if _, ok := a[k]; !ok {
			f(0, v)
		}
	}
}

// Less - a < b in the product order
//
// every component of a is <= the matching component of b and at
// least one is strictly less; maps can be mutually incomparable
func Less(a Map, b Map) bool {
	allLessEqual := true
	oneLess := false
	union(a, b, func(x Amount, y Amount) {
		if x > y {
			allLessEqual = false
		} else if x < y {
			oneLess = true
		}
	})
	return allLessEqual && oneLess
}

// LessEqual - every component of a is <= the matching component of b
func LessEqual(a Map, b Map) bool {
	result := true
	union(a, b, func(x Amount, y Amount) {
		if x > y {
			result = false
		}
	})
	return result
}

// Greater - b < a
func Greater(a Map, b Map) bool {
	return Less(b, a)
}

// GreaterEqual - b <= a
func GreaterEqual(a Map, b Map) bool {
	return LessEqual(b, a)
}

// Equal - same value for every key of the union
func Equal(a Map, b Map) bool {
	result := true
	union(a, b, func(x Amount, y Amount) {
		if x != y {
			result = false
		}
	})
	return result
}

// MoneyRange - true if no component is negative
//
// the upper bound is checked on individual amounts, not here
func (m Map) MoneyRange() bool {
	for _, v := range m {
		if v < 0 {
			return false
		}
	}
	return true
}

// IsZero - true if every component is zero
func (m Map) IsZero() bool {
	for _, v := range m {
		if 0 != v {
			return false
		}
	}
	return true
}

// String - "{id:amount, ...}" in key order
func (m Map) String() string {
	s := make([]string, 0, len(m))
	for _, k := range m.Assets() {
		s = append(s, k.String()[:16]+":"+m[k].String())
	}
	return "{" + strings.Join(s, ", ") + "}"
}
