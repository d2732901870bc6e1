// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
)

// the fixed reservation held against each creature until its creator
// first parts with it
type escrow struct {
	currency Currency
	amount   uint64
}

func (e escrow) checkReserve(trx storage.Transaction, acc *account.Account) error {
	if !e.currency.CanReserve(trx, acc, e.amount) {
		return fault.ErrInsufficientBalance
	}
	return nil
}

func (e escrow) reserveOnCreate(trx storage.Transaction, acc *account.Account) error {
	return e.currency.Reserve(trx, acc, e.amount)
}

// release the first time ownership leaves the creator
//
// a creator keeping the creature (transfer or sale to self) releases
// nothing, and a creature bought back by its creator never releases
// again; the caller must store the record when this returns true
func (e escrow) releaseIfCreator(trx storage.Transaction, c *Creature, from *account.Account, to *account.Account) bool {
	if c.Released || !from.Equal(c.Creator) || to.Equal(from) {
		return false
	}
	e.currency.Unreserve(trx, from, e.amount)
	c.Released = true
	return true
}
