// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetd/fault"
)

type class int

const (
	exists class = iota
	invalid
	length
	notFound
	process
	record
	reject
)

func classify(err error) []class {
	classes := []class{}
	checks := []struct {
		c  class
		is func(error) bool
	}{
		{exists, fault.IsErrExists},
		{invalid, fault.IsErrInvalid},
		{length, fault.IsErrLength},
		{notFound, fault.IsErrNotFound},
		{process, fault.IsErrProcess},
		{record, fault.IsErrRecord},
		{reject, fault.IsErrReject},
	}
	for _, check := range checks {
		if check.is(err) {
			classes = append(classes, check.c)
		}
	}
	return classes
}

// each error belongs to exactly one class
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err      error
		expected []class
	}{
		{fault.ErrAssetAlreadyRegistered, []class{exists}},
		{fault.ErrInvalidCount, []class{invalid}},
		{fault.ErrNameTooLong, []class{length}},
		{fault.ErrCacheMiss, []class{notFound}},
		{fault.ErrBatchClosed, []class{process}},
		{fault.ErrRecordTruncated, []class{record}},
		{fault.ErrAssetName, []class{reject}},
		{fault.ErrOutputAssetNotInflatable, []class{reject}},
		{errors.New("plain"), []class{}},
	}

	for i, e := range errorList {
		assert.Equal(t, e.expected, classify(e.err), "%d: %v", i, e.err)
	}
}

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "bad-txns-ouput-asset-not-inflatable", fault.RejectReason(fault.ErrOutputAssetNotInflatable))
	assert.Equal(t, "new-asset-stakable", fault.RejectReason(fault.ErrNewAssetStakable))
	assert.Equal(t, "", fault.RejectReason(fault.ErrAssetNotFound))
	assert.Equal(t, "", fault.RejectReason(nil))
}

func TestPanics(t *testing.T) {
	assert.PanicsWithValue(t, "ledger: 3 dirty", func() {
		fault.Panicf("ledger: %d dirty", 3)
	})
	assert.PanicsWithValue(t, "dump failed with error: store is not open", func() {
		fault.PanicIfError("dump", fault.ErrStoreNotOpen)
	})
	assert.NotPanics(t, func() {
		fault.PanicIfError("dump", nil)
	})
}
