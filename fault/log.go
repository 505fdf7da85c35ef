// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log to be written before a panic
const flushDelay = 100 * time.Millisecond

// hold a logger channel
var globals struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	globals.Lock()
	defer globals.Unlock()

	if nil != globals.log {
		return ErrAlreadyInitialised
	}
	globals.log = logger.New("PANIC")
	return nil
}

// Finalise - flush and release the channel
func Finalise() {
	globals.Lock()
	defer globals.Unlock()

	if nil != globals.log {
		globals.log.Flush()
		globals.log = nil
	}
}

// Criticalf - log a formatted string with the caller position
func Criticalf(format string, arguments ...interface{}) {
	critical(caller(2) + fmt.Sprintf(format, arguments...))
}

// Panicf - log the message then panic
//
// used where continuing would leave the ledger inconsistent
func Panicf(format string, arguments ...interface{}) {
	s := fmt.Sprintf(format, arguments...)
	critical(caller(2) + s)
	time.Sleep(flushDelay)
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	critical(caller(2) + s)
	time.Sleep(flushDelay)
	panic(s)
}

// file and line prefix for the function skip levels up
func caller(skip int) string {
	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("(%q:%d) ", file, line)
	}
	return ""
}

// console output when the channel is not set up
func critical(s string) {
	globals.Lock()
	defer globals.Unlock()

	if nil == globals.log {
		fmt.Printf("*** %s\n", s)
		return
	}
	globals.log.Critical(s)
	globals.log.Flush()
}
