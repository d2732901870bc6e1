// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/genetics"
	"github.com/bitmark-inc/creatured/random"
	"github.com/bitmark-inc/creatured/storage"
)

// Transactor - source of storage transactions
type Transactor interface {
	Begin() (storage.Transaction, error)
}

// Currency - free and reserved balances
type Currency interface {
	FreeBalance(storage.Transaction, *account.Account) uint64
	CanReserve(storage.Transaction, *account.Account, uint64) bool
	Reserve(storage.Transaction, *account.Account, uint64) error
	Unreserve(storage.Transaction, *account.Account, uint64) uint64
	Transfer(storage.Transaction, *account.Account, *account.Account, uint64) error
}

// Randomness - deterministic random bytes for a context
type Randomness interface {
	RandomBytes(random.Context) genetics.DNA
}

// Chain - the current block context
type Chain interface {
	Seed() []byte
	NextSequence() uint64
}

// Notifier - receives one event per committed operation
type Notifier interface {
	Send(command string, parameters ...[]byte)
}
