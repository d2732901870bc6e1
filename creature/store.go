// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/creatured/util"
)

// Handles - the pools used by the registry
type Handles struct {
	Creatures *storage.PoolHandle
	Owners    *storage.PoolHandle
	Counters  *storage.PoolHandle
}

// asset store and ownership index
type store struct {
	handles Handles
}

func indexKey(index uint64) []byte {
	return util.Uint64ToBytes(index)
}

// read a creature as seen by the transaction
//
// second value is false if the index was never issued
func (s store) get(trx storage.Transaction, index uint64) (*Creature, bool, error) {
	packed, found := trx.Get(s.handles.Creatures, indexKey(index))
	return unpackFound(packed, found)
}

func (s store) put(trx storage.Transaction, c *Creature) {
	trx.Put(s.handles.Creatures, indexKey(c.Index), c.Pack())
}

// current owner as seen by the transaction
func (s store) owner(trx storage.Transaction, index uint64) (*account.Account, bool, error) {
	buffer, found := trx.Get(s.handles.Owners, indexKey(index))
	return accountFound(buffer, found)
}

func (s store) setOwner(trx storage.Transaction, index uint64, owner *account.Account) {
	trx.Put(s.handles.Owners, indexKey(index), owner.Bytes())
}

// committed reads for queries

func (s store) getCommitted(index uint64) (*Creature, bool, error) {
	packed, found := s.handles.Creatures.Get(indexKey(index))
	return unpackFound(packed, found)
}

func (s store) ownerCommitted(index uint64) (*account.Account, bool, error) {
	buffer, found := s.handles.Owners.Get(indexKey(index))
	return accountFound(buffer, found)
}

func unpackFound(packed []byte, found bool) (*Creature, bool, error) {
	if !found {
		return nil, false, nil
	}
	c, err := Unpack(packed)
	if nil != err {
		return nil, true, err
	}
	return c, true, nil
}

func accountFound(buffer []byte, found bool) (*account.Account, bool, error) {
	if !found {
		return nil, false, nil
	}
	owner, err := account.AccountFromBytes(buffer)
	if nil != err {
		return nil, true, fault.ErrCorruptRecord
	}
	return owner, true, nil
}
