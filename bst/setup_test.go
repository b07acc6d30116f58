// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "bst-test-")
	if nil != err {
		panic(fmt.Sprintf("temporary directory creation failed: %s", err))
	}

	var logConfig = logger.Configuration{
		Directory: dir,
		File:      "bst.log",
		Size:      1048576,
		Count:     20,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	if err := bst.Initialise(); err != nil {
		panic(fmt.Sprintf("bst initialization failed: %s", err))
	}
	_ = fault.Initialise()

	rc := m.Run()

	_ = bst.Finalise()
	fault.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(dir)

	os.Exit(rc)
}

func TestInitialiseTwice(t *testing.T) {
	if err := bst.Initialise(); err != fault.ErrAlreadyInitialised {
		t.Fatalf("second initialise: actual: %v  expected: %v", err, fault.ErrAlreadyInitialised)
	}
}
