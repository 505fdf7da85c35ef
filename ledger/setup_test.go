// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/chain"
	"github.com/bitmark-inc/assetd/digest"
	"github.com/bitmark-inc/assetd/ledger"
	"github.com/bitmark-inc/assetd/storage"
)

const (
	databaseFileName = "test.leveldb"
	logDirectory     = "test-log"
)

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logDirectory)
}

// configure for testing, returns an empty ledger
func setup(t *testing.T) (*storage.Store, *ledger.Ledger) {
	removeFiles()
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      fmt.Sprintf("%s.log", "ledger"),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	s, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return s, newLedger(t, s)
}

func newLedger(t *testing.T, s *storage.Store) *ledger.Ledger {
	subsidy, err := ledger.SubsidyFor(chain.Testing)
	if nil != err {
		t.Fatalf("subsidy error: %s", err)
	}
	configuration := ledger.DefaultConfiguration()
	l, err := ledger.New(s, &configuration, subsidy)
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}
	return l
}

func teardown(s *storage.Store) {
	s.Close()
	logger.Finalise()
	removeFiles()
}

// an issued asset record
func makeRecord(t *testing.T, name string, symbol string, flags asset.Flags) *asset.Record {
	m := asset.Metadata{
		Flags:         flags,
		Type:          asset.Token,
		IssuerAddress: "issuer-" + name,
	}
	if err := m.SetName(name); nil != err {
		t.Fatalf("set name: %q  error: %s", name, err)
	}
	if err := m.SetSymbol(symbol); nil != err {
		t.Fatalf("set symbol: %q  error: %s", symbol, err)
	}
	a, err := asset.New(m)
	if nil != err {
		t.Fatalf("new asset: %q  error: %s", name, err)
	}
	return &asset.Record{
		Asset:         *a,
		IssuingScript: []byte{0x76, 0xa9},
		InputAmount:   15,
		IssuedAmount:  1000,
		TxHash:        digest.NewDigest([]byte("tx-" + name)),
		Time:          1577836800,
	}
}

// open the existing test database
func reopen(t *testing.T) *storage.Store {
	s, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	return s
}
