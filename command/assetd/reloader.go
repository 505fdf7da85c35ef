// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/assetd/ledger"
	"github.com/bitmark-inc/logger"
)

// delay after a change event so an editor can finish writing
const defaultSettleTime = 2 * time.Second

// the parts of the ledger that can change at run time
type tunable interface {
	Resize(configuration *ledger.Configuration) error
	SetSnapshotInterval(interval time.Duration) error
}

type reloader struct {
	log        *logger.L
	fileName   string
	variables  map[string]string
	target     tunable
	channel    WatcherChannel
	settleTime time.Duration
}

func newReloader(log *logger.L, fileName string, variables map[string]string, target tunable, channel WatcherChannel) *reloader {
	return &reloader{
		log:        log,
		fileName:   fileName,
		variables:  variables,
		target:     target,
		channel:    channel,
		settleTime: defaultSettleTime,
	}
}

// Run - apply configuration changes until shutdown
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.channel.change:
			select {
			case <-shutdown:
				break loop
			case <-time.After(r.settleTime):
			}
			if err := r.refresh(); nil != err {
				r.log.Errorf("failed to read configuration from: %q  error: %s", r.fileName, err)
			}

		case <-r.channel.remove:
			r.log.Warnf("configuration: %q removed, keeping current settings", r.fileName)
		}
	}

	r.log.Info("stopped")
}

// only the ledger section is applied, other changes need a restart
func (r *reloader) refresh() error {
	configuration, err := getConfiguration(r.fileName, r.variables)
	if nil != err {
		return err
	}

	interval, err := configuration.Ledger.Interval()
	if nil != err {
		return err
	}
	if err := r.target.Resize(&configuration.Ledger); nil != err {
		return err
	}
	if err := r.target.SetSnapshotInterval(interval); nil != err {
		return err
	}

	r.log.Infof("ledger configuration: %+v", configuration.Ledger)
	return nil
}
