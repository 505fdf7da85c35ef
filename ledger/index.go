// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"
	"sync"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/fault"
)

// every registered asset by id and by folded name and symbol
//
// covers the stored and the cached records, it is unbounded so cache
// eviction never hides an asset
type assetIndex struct {
	sync.Mutex
	built  bool
	byID   map[asset.ID]string
	byText map[string]string
}

// case insensitive key for names and symbols
func fold(text string) string {
	return strings.ToLower(text)
}

func (x *assetIndex) add(name string, a *asset.Asset) {
	x.byID[a.ID] = name
	x.byText[fold(a.Name())] = name
	x.byText[fold(a.Symbol())] = name
}

// directory name of the asset with this name or symbol
func (x *assetIndex) nameOf(text string) (string, bool) {
	name, ok := x.byText[fold(text)]
	return name, ok
}

// lock the index, reading every asset record first if it is not built
//
// the caller must Unlock
func (l *Ledger) lockIndex() *assetIndex {
	x := &l.index
	x.Lock()
	if !x.built {
		l.buildIndex(x)
	}
	return x
}

// called with the index locked
//
// an unreadable store or a malformed record is fatal
func (l *Ledger) buildIndex(x *assetIndex) {
	items, err := l.assets.All()
	fault.PanicIfError("ledger: asset index", err)

	x.byID = make(map[asset.ID]string, len(items))
	x.byText = make(map[string]string, 2*len(items))
	for _, item := range items {
		x.add(item.Name, &item.Record.Asset)
	}
	x.built = true

	l.log.Debugf("indexed assets: %d", len(items))
}

// pass through nil and the not found error, anything else means the
// store or a record is damaged
func checkLookup(what string, err error, notFound error) error {
	if nil != err && notFound != err {
		fault.PanicIfError(what, err)
	}
	return err
}
