// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/assetd/background"
	"github.com/bitmark-inc/assetd/fault"
)

// snapshot - background process to dump the caches periodically
type snapshot struct {
	ledger   *Ledger
	interval time.Duration
}

// Snapshotter - a background process that dumps the ledger every
// interval and once more when shut down
func (l *Ledger) Snapshotter(interval time.Duration) (background.Process, error) {
	if interval < minimumSnapshotInterval {
		return nil, fault.ErrInvalidSnapshotPeriod
	}
	return &snapshot{
		ledger:   l,
		interval: interval,
	}, nil
}

// SetSnapshotInterval - change the period of a running snapshotter
func (l *Ledger) SetSnapshotInterval(interval time.Duration) error {
	if interval < minimumSnapshotInterval {
		return fault.ErrInvalidSnapshotPeriod
	}

	// keep only the latest value
	for {
		select {
		case l.interval <- interval:
			return nil
		default:
		}
		select {
		case <-l.interval:
		default:
		}
	}
}

// Run - dump on each tick
func (s *snapshot) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.ledger.log

	log.Infof("snapshot: starting, interval: %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case interval := <-s.ledger.interval:
			log.Infof("snapshot: interval: %s -> %s", s.interval, interval)
			s.interval = interval
			ticker.Reset(interval)

		case <-ticker.C:
			s.dump()
		}
	}

	s.dump()
	log.Info("snapshot: stopped")
}

func (s *snapshot) dump() {
	err := s.ledger.Dump()
	fault.PanicIfError("snapshot dump", err)
}
