// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic test identities
var (
	Alice   = NewIdentity(1)
	Bob     = NewIdentity(2)
	Charlie = NewIdentity(3)
	Dave    = NewIdentity(4)
)

// Identity - a test key pair
type Identity struct {
	PrivateKey *account.PrivateKey
	Account    *account.Account
}

// NewIdentity - a test network key pair from a one byte seed
func NewIdentity(n byte) Identity {
	seed := make([]byte, ed25519.SeedSize)
	seed[0] = n
	privateKey, err := account.PrivateKeyFromBytes(true, ed25519.NewKeyFromSeed(seed))
	if nil != err {
		panic(err)
	}
	return Identity{
		PrivateKey: privateKey,
		Account:    privateKey.Account(),
	}
}

// SetupTestLogger - log to a throwaway directory at critical level
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
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

// TeardownTestLogger - stop logging and remove the directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// NewStore - an empty in-memory database, panics on failure
func NewStore() *storage.Store {
	store, err := storage.NewMemory()
	if nil != err {
		panic(err)
	}
	return store
}
