// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// RejectError - a transaction failed a consensus rule; the text is the
// reject reason reported to peers
type RejectError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised          = ExistsError("already initialised")
	ErrAssetAlreadyRegistered      = ExistsError("asset already registered")
	ErrAssetIDMismatch             = InvalidError("asset id does not match metadata")
	ErrAssetNotFound               = NotFoundError("asset not found")
	ErrBatchClosed                 = ProcessError("batch is closed")
	ErrBatchInUse                  = ProcessError("batch already in use")
	ErrCannotDecodeAddress         = RecordError("cannot decode address")
	ErrChecksumMismatch            = RecordError("checksum mismatch")
	ErrCacheMiss                   = NotFoundError("cache miss")
	ErrChainAliasAlreadyRegistered = ExistsError("chain alias already registered")
	ErrChainAliasNotFound          = NotFoundError("chain alias not found")
	ErrContractAlreadyRegistered   = ExistsError("contract already registered")
	ErrContractNotFound            = NotFoundError("contract not found")
	ErrDivisionByZero              = InvalidError("division by zero")
	ErrFileNotFound                = NotFoundError("file not found")
	ErrInvalidCapacity             = InvalidError("invalid capacity")
	ErrConfigurationNotTable       = InvalidError("configuration did not return a table")
	ErrInvalidChain                = InvalidError("invalid chain")
	ErrInvalidKeyLength            = LengthError("invalid key length")
	ErrInvalidKeyType              = InvalidError("invalid key type")
	ErrInvalidCount                = InvalidError("invalid count")
	ErrInvalidCursor               = InvalidError("invalid cursor")
	ErrInvalidPool                 = InvalidError("invalid pool")
	ErrInvalidScript               = InvalidError("invalid script")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrInvalidSnapshotPeriod       = InvalidError("invalid snapshot period")
	ErrNameTooLong                 = LengthError("name too long")
	ErrNameTooShort                = LengthError("name too short")
	ErrNotADirectory               = InvalidError("not a directory")
	ErrNotAPlainFileName           = InvalidError("not a plain file name")
	ErrNotAddress                  = InvalidError("not an address")
	ErrNotADigest                  = RecordError("not a digest")
	ErrNotAssetRecord              = RecordError("not asset record")
	ErrNotChainAliasRecord         = RecordError("not chain alias record")
	ErrNotContractRecord           = RecordError("not contract record")
	ErrNotInitialised              = NotFoundError("not initialised")
	ErrRecordTruncated             = RecordError("record truncated")
	ErrRecordVersion               = RecordError("unsupported record version")
	ErrSignatureTooLong            = LengthError("signature too long")
	ErrStoreNotOpen                = ProcessError("store is not open")
	ErrSymbolTooLong               = LengthError("symbol too long")
	ErrSymbolTooShort              = LengthError("symbol too short")
	ErrTrailingData                = RecordError("trailing data after record")
	ErrUnknownAssetType            = InvalidError("unknown asset type")
)

// consensus reject reason codes - keep in alphabetic order
var (
	ErrAssetExpired              = RejectError("bad-txns-asset-expired")
	ErrAssetIDInvalid            = RejectError("bad-txns-asset-id")
	ErrAssetName                 = RejectError("bad-txns-asset-name")
	ErrAssetUnknown              = RejectError("bad-txns-asset-unknown")
	ErrFeeOutOfRange             = RejectError("bad-txns-fee-out-of-range")
	ErrInBelowOut                = RejectError("bad-txns-in-below-out")
	ErrInflationIssuerMismatch   = RejectError("bad-txns-inflation-issuer-mismatch")
	ErrInputAsset                = RejectError("bad-txns-input-asset")
	ErrInputAssetMultiple        = RejectError("bad-txns-input-asset-multiple")
	ErrInputAssetNotConvertable  = RejectError("bad-txns-input-asset-not-convertable")
	ErrInputAssetNotTransferable = RejectError("bad-txns-input-asset-not-transferable")
	ErrInputIssuer               = RejectError("bad-txns-input-issuer")
	ErrInputSize                 = RejectError("bad-txns-input-size")
	ErrInputValuesOutOfRange     = RejectError("bad-txns-inputvalues-outofrange")
	ErrInputsMissingOrSpent      = RejectError("bad-txns-inputs-missingorspent")
	ErrIssuerMismatch            = RejectError("bad-txns-issuer-mismatch")
	ErrNewAssetStakable          = RejectError("new-asset-stakable")
	ErrOutputAsset               = RejectError("bad-txns-output-asset")
	ErrOutputAssetNotInflatable  = RejectError("bad-txns-ouput-asset-not-inflatable")
	ErrOutputTotalTooLarge       = RejectError("bad-txns-txouttotal-toolarge")
	ErrOutputValueNegative       = RejectError("bad-txns-vout-negative")
	ErrPrematureCoinbaseSpend    = RejectError("bad-txns-premature-spend-of-coinbase")
	ErrUniqueConvertable         = RejectError("bad-txns-unique-convertable")
	ErrUniqueInflatable          = RejectError("bad-txns-unique-inflatable")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }
func (e RejectError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
func IsErrReject(e error) bool   { _, ok := e.(RejectError); return ok }

// RejectReason - the reason code of a consensus failure, blank for
// any other error
func RejectReason(e error) string {
	if r, ok := e.(RejectError); ok {
		return string(r)
	}
	return ""
}
