// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/assetd/address"
	"github.com/bitmark-inc/assetd/amount"
	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/chain"
	"github.com/bitmark-inc/assetd/coin"
	"github.com/bitmark-inc/assetd/coin/mocks"
	"github.com/bitmark-inc/assetd/consensus"
	"github.com/bitmark-inc/assetd/contract"
	"github.com/bitmark-inc/assetd/digest"
	"github.com/bitmark-inc/assetd/ledger"
	"github.com/bitmark-inc/assetd/storage"
)

const logDirectory = "test-log"

// scripts of the test holders
var (
	alice = keyHashScript(0xa1)
	bob   = keyHashScript(0xb0)
)

// everything one test needs
type fixture struct {
	t         *testing.T
	ctl       *gomock.Controller
	store     *storage.Store
	ledger    *ledger.Ledger
	validator *consensus.Validator
	view      *mocks.MockView
	subsidy   *asset.Asset
	n         uint32
}

func setup(t *testing.T, parameters consensus.Parameters) *fixture {
	os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      fmt.Sprintf("%s.log", "consensus"),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	s, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	subsidy, err := ledger.SubsidyFor(chain.Testing)
	if nil != err {
		t.Fatalf("subsidy error: %s", err)
	}
	configuration := ledger.DefaultConfiguration()
	l, err := ledger.New(s, &configuration, subsidy)
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}

	ctl := gomock.NewController(t)
	return &fixture{
		t:         t,
		ctl:       ctl,
		store:     s,
		ledger:    l,
		validator: consensus.New(l, address.Base58Codec{Test: true}, parameters),
		view:      mocks.NewMockView(ctl),
		subsidy:   subsidy,
	}
}

func (f *fixture) teardown() {
	f.ctl.Finish()
	f.store.Close()
	logger.Finalise()
	os.RemoveAll(logDirectory)
}

// a pay to key hash script
func keyHashScript(fill byte) []byte {
	a := &address.Address{
		Kind:    address.KeyHash,
		Test:    true,
		Payload: make([]byte, 20),
	}
	for i := range a.Payload {
		a.Payload[i] = fill
	}
	s, err := a.Script()
	if nil != err {
		panic(err)
	}
	return s
}

func addressOf(script []byte) string {
	s, err := address.Base58Codec{Test: true}.FromScript(script)
	if nil != err {
		panic(err)
	}
	return s
}

// an unspent coin the mock view will return
func (f *fixture) coin(id asset.ID, value amount.Amount, script []byte) coin.OutPoint {
	f.n += 1
	o := coin.OutPoint{
		TxHash: digest.NewDigest([]byte(fmt.Sprintf("funding-%d", f.n))),
		Index:  f.n,
	}
	c := coin.Coin{
		Asset:  id,
		Amount: value,
		Script: script,
		Height: 1,
	}
	f.view.EXPECT().AccessCoin(o).Return(c, true).AnyTimes()
	return o
}

// asset metadata with its id
func newAsset(t *testing.T, name string, symbol string, flags asset.Flags, kind asset.Type) *asset.Asset {
	m := asset.Metadata{
		Flags:         flags,
		Type:          kind,
		IssuerAddress: addressOf(alice),
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
	return a
}

// put an asset and its contract straight into the ledger
func (f *fixture) register(a *asset.Asset, issuer []byte) {
	r := &asset.Record{
		Asset:        *a,
		IssuedAmount: 1000,
		TxHash:       digest.NewDigest([]byte(a.Name())),
	}
	if err := f.ledger.RegisterAsset(r); nil != err {
		f.t.Fatalf("register asset: %s  error: %s", a.Name(), err)
	}
	c := &contract.Record{
		Contract: contract.Contract{
			Version: contract.CurrentVersion,
			Name:    a.Name(),
			Address: addressOf(issuer),
		},
	}
	if err := f.ledger.RegisterContract(c); nil != err {
		f.t.Fatalf("register contract: %s  error: %s", a.Name(), err)
	}
}

// an asset aware transaction
func assetTx(inputs []coin.OutPoint, outputs ...consensus.Output) *consensus.Transaction {
	return &consensus.Transaction{
		Version: consensus.AssetVersion,
		Inputs:  inputs,
		Outputs: outputs,
		Time:    1577836800,
	}
}

func out(id asset.ID, value amount.Amount, script []byte) consensus.Output {
	return consensus.Output{
		Asset:  id,
		Amount: value,
		Script: script,
	}
}

// a new ledger and validator over the same store, nothing loaded
func (f *fixture) restart(parameters consensus.Parameters) {
	configuration := ledger.DefaultConfiguration()
	l, err := ledger.New(f.store, &configuration, f.subsidy)
	if nil != err {
		f.t.Fatalf("ledger error: %s", err)
	}
	f.ledger = l
	f.validator = consensus.New(l, address.Base58Codec{Test: true}, parameters)
}
