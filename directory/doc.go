// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package directory - a named record table held as a bounded recency
// cache in front of one tagged storage pool
//
// the cache answers reads, the pool holds the snapshot that survives a
// restart. Records added with Put are dirty until the next Dump; a
// dirty record evicted from the cache is written to the pool first, and
// every cache miss falls back to the pool, so a bounded cache never
// makes a known record disappear.
//
// store layout: key = name, value = packed record, under the pool tag
package directory
