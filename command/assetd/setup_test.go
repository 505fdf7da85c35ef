// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	logDirectory     = "test-log"
	logFileName      = "test.log"
	logSizeOfFiles   = 1048576
	logNumberOfFiles = 10
)

func setupLogger(t *testing.T) {
	_ = os.Mkdir(logDirectory, 0770)
	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      logFileName,
		Size:      logSizeOfFiles,
		Count:     logNumberOfFiles,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

func teardown() {
	logger.Finalise()
	os.RemoveAll(logDirectory)
}

// a data directory holding a configuration file
func setupDataDirectory(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "assetd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "assetd.conf")
	writeConfiguration(t, fileName, content)
	return dir, fileName
}

func writeConfiguration(t *testing.T, fileName string, content string) {
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
}
