// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/directory"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/storage"
	"github.com/bitmark-inc/assetd/util"
)

const (
	databaseFileName = "test.leveldb"
	logDirectory     = "test-log"
)

var errTestNotFound = fault.NotFoundError("test record not found")

// record held by the test directories
type testRecord struct {
	Value string
	Count uint64
}

func packTest(r *testRecord) (util.Packed, error) {
	if "" == r.Value {
		return nil, fault.ErrNameTooShort
	}
	return util.Packed{}.AppendString(r.Value).AppendUint64(r.Count), nil
}

func unpackTest(buffer []byte) (*testRecord, error) {
	u := util.NewUnpacker(buffer)
	r := &testRecord{
		Value: u.String(),
		Count: u.Uint64(),
	}
	if err := u.Finish(); nil != err {
		return nil, err
	}
	return r, nil
}

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logDirectory)
}

func setup(t *testing.T) *storage.Store {
	removeFiles()
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      fmt.Sprintf("%s.log", "directory"),
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
	return s
}

// open an existing test database
func reopen(t *testing.T) *storage.Store {
	s, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	return s
}

func teardown(s *storage.Store) {
	s.Close()
	logger.Finalise()
	removeFiles()
}

func newTestDirectory(s *storage.Store, capacity int) *directory.Directory[testRecord] {
	return directory.New[testRecord]("test", s.Pool.TestData, capacity, packTest, unpackTest, errTestNotFound)
}

func names(items []directory.Item[testRecord]) []string {
	n := make([]string, 0, len(items))
	for _, item := range items {
		n = append(n, item.Name)
	}
	return n
}
