// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/fault"
)

// logging channel, nil until Initialise is called
var log *logger.L

// Initialise - open the "bst" log channel
//
// logger.Initialise must already have been called
func Initialise() error {
	if nil != log {
		return fault.ErrAlreadyInitialised
	}
	log = logger.New("bst")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	log.Info("starting…")
	return nil
}

// Finalise - flush and close the log channel
func Finalise() error {
	if nil == log {
		return fault.ErrNotInitialised
	}
	log.Info("finished")
	log.Flush()
	log = nil
	return nil
}
