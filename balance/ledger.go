// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"math"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

// Handles - the pools holding balances
type Handles struct {
	Free     *storage.PoolHandle
	Reserved *storage.PoolHandle
	Accounts *storage.PoolHandle
}

// Ledger - free and reserved balance per account
//
// every mutating call stages its writes in the caller's transaction
type Ledger struct {
	log     *logger.L
	handles Handles
}

// New - create a ledger over the given pools
func New(log *logger.L, handles Handles) *Ledger {
	return &Ledger{
		log:     log,
		handles: handles,
	}
}

// Exists - true once an account has received any funds
func (l *Ledger) Exists(trx storage.Transaction, acc *account.Account) bool {
	return trx.Has(l.handles.Accounts, acc.Bytes())
}

// FreeBalance - spendable amount
func (l *Ledger) FreeBalance(trx storage.Transaction, acc *account.Account) uint64 {
	n, _ := trx.GetN(l.handles.Free, acc.Bytes())
	return n
}

// ReservedBalance - amount held back from spending
func (l *Ledger) ReservedBalance(trx storage.Transaction, acc *account.Account) uint64 {
	n, _ := trx.GetN(l.handles.Reserved, acc.Bytes())
	return n
}

// Balance - committed free and reserved amounts, for queries
func (l *Ledger) Balance(acc *account.Account) (uint64, uint64, bool) {
	key := acc.Bytes()
	free, _ := l.handles.Free.GetN(key)
	reserved, _ := l.handles.Reserved.GetN(key)
	return free, reserved, l.handles.Accounts.Has(key)
}

// Deposit - endow an account, creating it if necessary
func (l *Ledger) Deposit(trx storage.Transaction, acc *account.Account, amount uint64) error {
	free := l.FreeBalance(trx, acc)
	if free > math.MaxUint64-amount {
		return fault.ErrBalanceOverflow
	}

	key := acc.Bytes()
	trx.PutN(l.handles.Free, key, free+amount)
	trx.Put(l.handles.Accounts, key, []byte{0x01})

	l.log.Debugf("deposit: %s  amount: %d", acc, amount)
	return nil
}

// CanReserve - true if the free balance covers the amount
func (l *Ledger) CanReserve(trx storage.Transaction, acc *account.Account, amount uint64) bool {
	return l.FreeBalance(trx, acc) >= amount
}

// Reserve - move an amount from free to reserved
func (l *Ledger) Reserve(trx storage.Transaction, acc *account.Account, amount uint64) error {
	free := l.FreeBalance(trx, acc)
	if free < amount {
		return fault.ErrInsufficientBalance
	}
	reserved := l.ReservedBalance(trx, acc)
	if reserved > math.MaxUint64-amount {
		return fault.ErrBalanceOverflow
	}

	key := acc.Bytes()
	trx.PutN(l.handles.Free, key, free-amount)
	trx.PutN(l.handles.Reserved, key, reserved+amount)

	l.log.Debugf("reserve: %s  amount: %d", acc, amount)
	return nil
}

// Unreserve - move up to amount from reserved back to free
//
// returns the amount actually moved, never more than was reserved
func (l *Ledger) Unreserve(trx storage.Transaction, acc *account.Account, amount uint64) uint64 {
	reserved := l.ReservedBalance(trx, acc)
	free := l.FreeBalance(trx, acc)

	actual := amount
	if actual > reserved {
		actual = reserved
	}
	if actual > math.MaxUint64-free {
		actual = math.MaxUint64 - free
	}
	if 0 == actual {
		return 0
	}

	key := acc.Bytes()
	trx.PutN(l.handles.Reserved, key, reserved-actual)
	trx.PutN(l.handles.Free, key, free+actual)

	l.log.Debugf("unreserve: %s  requested: %d  actual: %d", acc, amount, actual)
	return actual
}

// Transfer - move free balance between accounts
func (l *Ledger) Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error {
	fromFree := l.FreeBalance(trx, from)
	if fromFree < amount {
		return fault.ErrInsufficientBalance
	}
	if from.Equal(to) {
		return nil
	}

	toFree := l.FreeBalance(trx, to)
	if toFree > math.MaxUint64-amount {
		return fault.ErrBalanceOverflow
	}

	toKey := to.Bytes()
	trx.PutN(l.handles.Free, from.Bytes(), fromFree-amount)
	trx.PutN(l.handles.Free, toKey, toFree+amount)
	trx.Put(l.handles.Accounts, toKey, []byte{0x01})

	l.log.Debugf("transfer: %s → %s  amount: %d", from, to, amount)
	return nil
}
