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
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/logger"
)

const eventTimeout = 5 * time.Second

func expectEvent(t *testing.T, ch <-chan struct{}, name string) {
	select {
	case <-ch:
	case <-time.After(eventTimeout):
		t.Errorf("watcher did not receive %s event", name)
	}
}

func TestFileWatcher(t *testing.T) {
	setupLogger(t)
	defer teardown()

	dir, fileName := setupDataDirectory(t, "return {}")
	defer os.RemoveAll(dir)

	channel := newWatcherChannel()
	w, err := newFileWatcher(fileName, logger.New("test"), channel)
	if !assert.Nil(t, err, "new watcher") {
		return
	}
	if !assert.Nil(t, w.Start(), "start") {
		return
	}
	defer w.Stop()

	// other files in the directory are ignored
	err = ioutil.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0600)
	assert.Nil(t, err, "write other")

	writeConfiguration(t, fileName, "return { chain = \"local\" }")
	expectEvent(t, channel.change, "change")

	err = os.Remove(fileName)
	assert.Nil(t, err, "remove")
	expectEvent(t, channel.remove, "remove")
}

func TestFileWatcherMissingFile(t *testing.T) {
	setupLogger(t)
	defer teardown()

	_, err := newFileWatcher("/nonexistent/assetd.conf", logger.New("test"), newWatcherChannel())
	assert.Equal(t, fault.ErrFileNotFound, err)
}

func TestSendEvent(t *testing.T) {
	setupLogger(t)
	defer teardown()

	w := &FileWatcherData{
		log: logger.New("test"),
	}

	ch := make(chan struct{}, 1)
	assert.False(t, w.isChannelFull(ch), "empty channel")

	w.sendEvent(ch, "test")
	assert.True(t, w.isChannelFull(ch), "after send")

	// a second event is discarded rather than blocking
	w.sendEvent(ch, "test")
	assert.Equal(t, 1, len(ch), "pending events")
}
