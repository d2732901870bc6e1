// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
)

// key in the counters pool marking the genesis balances as applied
var genesisKey = []byte("genesis")

// Allocation - an initial balance from the genesis section of the
// configuration
type Allocation struct {
	Account string `gluamapper:"account" json:"account"`
	Amount  uint64 `gluamapper:"amount" json:"amount"`
}

// Transactor - source of storage transactions
type Transactor interface {
	Begin() (storage.Transaction, error)
}

// Genesis - deposit the initial balances, once per database
//
// returns false if they were applied earlier; any bad allocation
// aborts the whole set
func (l *Ledger) Genesis(db Transactor, marker *storage.PoolHandle, testing bool, allocations []Allocation) (bool, error) {
	trx, err := db.Begin()
	if nil != err {
		return false, err
	}

	if trx.Has(marker, genesisKey) {
		_ = trx.Abort()
		return false, nil
	}

	for _, allocation := range allocations {
		acc, err := account.AccountFromBase58(allocation.Account)
		if nil != err {
			l.log.Errorf("genesis account: %q  error: %s", allocation.Account, err)
			_ = trx.Abort()
			return false, fault.ErrNoSuchAccount
		}
		if acc.IsTesting() != testing {
			l.log.Errorf("genesis account: %q  error: %s", allocation.Account, fault.ErrWrongNetworkForPublicKey)
			_ = trx.Abort()
			return false, fault.ErrWrongNetworkForPublicKey
		}

		err = l.Deposit(trx, acc, allocation.Amount)
		if nil != err {
			_ = trx.Abort()
			return false, err
		}
		l.log.Infof("genesis: %s  amount: %d", acc, allocation.Amount)
	}

	trx.PutN(marker, genesisKey, uint64(len(allocations)))
	err = trx.Commit()
	if nil != err {
		return false, err
	}
	return true, nil
}
