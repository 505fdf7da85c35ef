// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/assetd/fault"
)

// defaults
const (
	DefaultAssetCacheSize    = 10000
	DefaultContractCacheSize = 10000
	DefaultAliasCacheSize    = 1000
	DefaultSnapshotInterval  = "10m"

	minimumSnapshotInterval = time.Second
)

// Configuration - cache sizes and snapshot period
type Configuration struct {
	AssetCacheSize    int    `gluamapper:"asset_cache_size" json:"asset_cache_size"`
	ContractCacheSize int    `gluamapper:"contract_cache_size" json:"contract_cache_size"`
	AliasCacheSize    int    `gluamapper:"alias_cache_size" json:"alias_cache_size"`
	SnapshotInterval  string `gluamapper:"snapshot_interval" json:"snapshot_interval"`
}

// DefaultConfiguration - the values used when a field is absent
func DefaultConfiguration() Configuration {
	return Configuration{
		AssetCacheSize:    DefaultAssetCacheSize,
		ContractCacheSize: DefaultContractCacheSize,
		AliasCacheSize:    DefaultAliasCacheSize,
		SnapshotInterval:  DefaultSnapshotInterval,
	}
}

// Interval - the parsed snapshot interval
func (c *Configuration) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.SnapshotInterval)
	if nil != err {
		return 0, fault.ErrInvalidSnapshotPeriod
	}
	if d < minimumSnapshotInterval {
		return 0, fault.ErrInvalidSnapshotPeriod
	}
	return d, nil
}

// Validate - check all values
func (c *Configuration) Validate() error {
	if c.AssetCacheSize < 1 || c.ContractCacheSize < 1 || c.AliasCacheSize < 1 {
		return fault.ErrInvalidCapacity
	}
	_, err := c.Interval()
	return err
}
