// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/creatured/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = "testing/test.leveldb"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) *storage.Store {
	setupTestLogger()
	store, err := storage.NewMemory()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return store
}

// post test cleanup
func teardown(store *storage.Store) {
	store.Close()
	teardownTestLogger()
}

// a key that must not exist
var nonExistantKey = []byte("/nonexistant")
