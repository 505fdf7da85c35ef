// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/address"
	"github.com/bitmark-inc/assetd/amount"
	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/coin"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/ledger"
)

// Validator - applies the rules against one ledger
type Validator struct {
	log        *logger.L
	ledger     *ledger.Ledger
	codec      address.Codec
	parameters Parameters

	// clock for expiry tests
	now func() time.Time
}

// New - create a validator
func New(l *ledger.Ledger, codec address.Codec, parameters Parameters) *Validator {
	return &Validator{
		log:        logger.New("consensus"),
		ledger:     l,
		codec:      codec,
		parameters: parameters,
		now:        time.Now,
	}
}

// SetClock - replace the clock used for expiry
func (v *Validator) SetClock(now func() time.Time) {
	v.now = now
}

// the resolved inputs of a transaction
type spending struct {
	coins  []coin.Coin
	assets amount.Map
}

// CheckTxInputs - validate the inputs and outputs of a transaction and
// return its fee in units of the spent asset
//
// a coinbase is not checked here and has no fee
func (v *Validator) CheckTxInputs(tx *Transaction, view coin.View, spendHeight uint32) (amount.Amount, error) {
	v.ledger.RLock()
	defer v.ledger.RUnlock()

	fee, _, err := v.check(tx, view, spendHeight)
	return fee, err
}

// check with the ledger lock held
func (v *Validator) check(tx *Transaction, view coin.View, spendHeight uint32) (amount.Amount, *spending, error) {
	if tx.IsCoinbase() {
		return 0, &spending{assets: amount.Map{}}, nil
	}

	in, err := v.resolveInputs(tx, view, spendHeight)
	if nil != err {
		return 0, nil, err
	}

	if !tx.IsAssetAware() {
		fee, err := v.checkLegacy(tx, in)
		return fee, in, err
	}

	fee, err := v.checkAssets(tx, in)
	if nil != err {
		v.log.Debugf("reject: %s", fault.RejectReason(err))
	}
	return fee, in, err
}

// fetch every input coin and build the input asset map
func (v *Validator) resolveInputs(tx *Transaction, view coin.View, spendHeight uint32) (*spending, error) {
	in := &spending{
		coins:  make([]coin.Coin, 0, len(tx.Inputs)),
		assets: amount.Map{},
	}

	total := amount.Amount(0)
	for _, outpoint := range tx.Inputs {
		c, found := view.AccessCoin(outpoint)
		if !found {
			return nil, fault.ErrInputsMissingOrSpent
		}

		if c.IsCoinbase && (spendHeight < c.Height || spendHeight-c.Height < v.parameters.CoinbaseMaturity) {
			return nil, fault.ErrPrematureCoinbaseSpend
		}

		total += c.Amount
		if !amount.MoneyRange(c.Amount) || !amount.MoneyRange(total) {
			return nil, fault.ErrInputValuesOutOfRange
		}

		in.coins = append(in.coins, c)
		in.assets[c.Asset] += c.Amount
	}
	return in, nil
}

// value check for transactions without asset rules
func (v *Validator) checkLegacy(tx *Transaction, in *spending) (amount.Amount, error) {
	valueIn := amount.Amount(0)
	for _, c := range in.coins {
		valueIn += c.Amount
	}

	valueOut := amount.Amount(0)
	for _, out := range tx.Outputs {
		if out.Amount < 0 {
			return 0, fault.ErrOutputValueNegative
		}
		valueOut += out.Amount
		if !amount.MoneyRange(out.Amount) || !amount.MoneyRange(valueOut) {
			return 0, fault.ErrOutputTotalTooLarge
		}
	}

	if valueIn < valueOut {
		return 0, fault.ErrInBelowOut
	}

	fee := valueIn - valueOut
	if !amount.MoneyRange(fee) {
		return 0, fault.ErrFeeOutOfRange
	}
	return fee, nil
}

// the asset lifecycle rules
func (v *Validator) checkAssets(tx *Transaction, in *spending) (amount.Amount, error) {

	outputAssets := amount.Map{}
	for _, out := range tx.Outputs {
		if out.Amount < 0 {
			return 0, fault.ErrOutputValueNegative
		}
		outputAssets[out.Asset] += out.Amount
		if !amount.MoneyRange(out.Amount) || !amount.MoneyRange(outputAssets[out.Asset]) {
			return 0, fault.ErrOutputTotalTooLarge
		}
	}

	// structural gates
	inputAssets := in.assets
	if 0 == len(inputAssets) {
		return 0, fault.ErrInputSize
	}
	if len(inputAssets) > 1 {
		return 0, fault.ErrInputAssetMultiple
	}
	if len(outputAssets) > 2 {
		return 0, fault.ErrOutputAsset
	}

	spentID := inputAssets.Assets()[0]
	spent, err := v.ledger.GetAssetByID(spentID)
	if fault.ErrAssetNotFound == err {
		return 0, fault.ErrAssetUnknown
	}
	if nil != err {
		return 0, err
	}

	// conversion and transfer gates
	if 2 == len(outputAssets) && !spent.IsConvertable() {
		return 0, fault.ErrInputAssetNotConvertable
	}
	if !spent.IsTransferable() {
		return 0, fault.ErrInputAssetNotTransferable
	}

	issuer := &inputIssuer{
		codec: v.codec,
		coins: in.coins,
	}

	for _, id := range outputAssets.Assets() {
		if v.ledger.IsSubsidy(id) {
			continue
		}
		existing, err := v.ledger.GetAssetByID(id)
		if nil == err {
			err := v.checkExisting(existing, issuer, inputAssets[id], outputAssets[id])
			if nil != err {
				return 0, err
			}
			continue
		}
		if fault.ErrAssetNotFound != err {
			return 0, err
		}
		if err := v.checkIssuance(tx, id, spentID); nil != err {
			return 0, err
		}
	}

	if err := checkContracts(tx, outputAssets); nil != err {
		return 0, err
	}

	// value gate
	if 1 == len(outputAssets) {
		id := outputAssets.Assets()[0]
		if inputAssets[id] < outputAssets[id] {
			return 0, fault.ErrInBelowOut
		}
	}

	fee := amount.Sub(inputAssets, outputAssets)[spentID]
	if !amount.MoneyRange(fee) {
		return 0, fault.ErrFeeOutOfRange
	}
	return fee, nil
}

// an asset already in the directory appearing in the outputs
func (v *Validator) checkExisting(a *asset.Asset, issuer *inputIssuer, valueIn amount.Amount, valueOut amount.Amount) error {
	if a.IsExpired(v.now()) {
		return fault.ErrAssetExpired
	}

	if a.IsRestricted() {
		from, ok := issuer.single()
		if !ok {
			return fault.ErrInputIssuer
		}
		if !v.isIssuer(a, from) {
			return fault.ErrIssuerMismatch
		}
	}

	if a.IsInflatable() {
		from, ok := issuer.single()
		if !ok || !v.isIssuer(a, from) {
			return fault.ErrInflationIssuerMismatch
		}
		return nil
	}

	if v.parameters.RejectOnlyNetIssuance && valueOut <= valueIn {
		return nil
	}
	return fault.ErrOutputAssetNotInflatable
}

// compare against the contract backing the asset
func (v *Validator) isIssuer(a *asset.Asset, from string) bool {
	c, err := v.ledger.GetContract(a.Name())
	if nil != err {
		return false
	}
	return from == c.Address
}

// a new asset appearing in the outputs
func (v *Validator) checkIssuance(tx *Transaction, id asset.ID, spentID asset.ID) error {
	a := tx.declared(id)
	if nil == a {
		return fault.ErrAssetUnknown
	}
	if err := a.VerifyID(); nil != err {
		return fault.ErrAssetIDInvalid
	}

	if a.IsStakeable() {
		return fault.ErrNewAssetStakable
	}
	if !v.ledger.IsSubsidy(spentID) {
		return fault.ErrInputAsset
	}
	if v.ledger.AssetNameExists(a.Name()) || v.ledger.AssetNameExists(a.Symbol()) {
		return fault.ErrAssetName
	}

	if asset.Unique == a.Type {
		if a.IsConvertable() {
			return fault.ErrUniqueConvertable
		}
		if a.IsInflatable() {
			return fault.ErrUniqueInflatable
		}
	}
	return nil
}

// declared assets must be issued under distinct names and contracts
// must back one of them
func checkContracts(tx *Transaction, outputAssets amount.Map) error {
	names := make(map[string]struct{})
	for i := range tx.Assets {
		a := &tx.Assets[i]
		if _, ok := outputAssets[a.ID]; !ok {
			return fault.ErrAssetUnknown
		}
		own := map[string]struct{}{
			strings.ToLower(a.Name()):   {},
			strings.ToLower(a.Symbol()): {},
		}
		for key := range own {
			if _, ok := names[key]; ok {
				return fault.ErrAssetName
			}
			names[key] = struct{}{}
		}
	}
	for i := range tx.Contracts {
		if _, ok := names[strings.ToLower(tx.Contracts[i].Name)]; !ok {
			return fault.ErrAssetUnknown
		}
	}
	return nil
}
