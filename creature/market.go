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

// list or re-price a creature
//
// checks: ownership, then price, then existence
func (r *Registry) list(trx storage.Transaction, caller *account.Account, index uint64, price uint64) error {
	owner, found, err := r.store.owner(trx, index)
	if nil != err {
		return err
	}
	if !found || !owner.Equal(caller) {
		return fault.ErrNotOwner
	}

	if 0 == price {
		return fault.ErrInvalidPrice
	}

	c, found, err := r.store.get(trx, index)
	if nil != err {
		return err
	}
	if !found {
		return fault.ErrNoSuchAsset
	}

	c.Price = price
	c.ForSale = true
	r.store.put(trx, c)
	return nil
}

// buy a listed creature at its price
//
// returns the seller; payment is the last check so any failure up
// to and including it leaves nothing staged
func (r *Registry) purchase(trx storage.Transaction, buyer *account.Account, index uint64) (*account.Account, error) {
	c, found, err := r.store.get(trx, index)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrNoSuchAsset
	}

	seller, found, err := r.store.owner(trx, index)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrNoSuchOwner
	}

	if !c.ForSale {
		return nil, fault.ErrNotForSale
	}

	err = r.currency.Transfer(trx, buyer, seller, c.Price)
	if nil != err {
		return nil, err
	}

	r.store.setOwner(trx, index, buyer)
	r.escrow.releaseIfCreator(trx, c, seller, buyer)

	// the last sale price is kept
	c.ForSale = false
	r.store.put(trx, c)

	return seller, nil
}
