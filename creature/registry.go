// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"sync"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/genetics"
	"github.com/bitmark-inc/creatured/random"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

// Configuration - registry parameters
type Configuration struct {
	ReservedAmountOnCreate uint64 `gluamapper:"reserved_amount_on_create" json:"reserved_amount_on_create"`
}

// Registry - create, transfer, breed, sell and buy creatures
//
// operations are serialised; each runs in one storage transaction
// that is committed only if the operation succeeds
type Registry struct {
	sync.Mutex

	log *logger.L

	db         Transactor
	store      store
	allocator  allocator
	escrow     escrow
	currency   Currency
	randomness Randomness
	chain      Chain
	notifier   Notifier
}

// New - create a registry
//
// notifier may be nil
func New(
	log *logger.L,
	db Transactor,
	handles Handles,
	configuration Configuration,
	currency Currency,
	randomness Randomness,
	chain Chain,
	notifier Notifier,
) *Registry {
	return &Registry{
		log:        log,
		db:         db,
		store:      store{handles: handles},
		allocator:  allocator{pool: handles.Counters},
		escrow:     escrow{currency: currency, amount: configuration.ReservedAmountOnCreate},
		currency:   currency,
		randomness: randomness,
		chain:      chain,
		notifier:   notifier,
	}
}

// run f in a transaction, commit on success, abort on any error
func (r *Registry) execute(f func(trx storage.Transaction) error) error {
	trx, err := r.db.Begin()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		if fault.IsErrRecord(err) {
			r.log.Criticalf("storage: %s", err)
		}
		_ = trx.Abort()
		return err
	}
	return trx.Commit()
}

// fresh random bytes for the caller, consumes an operation sequence number
func (r *Registry) randomBytes(caller *account.Account) genetics.DNA {
	ctx := random.Context{
		Seed:     r.chain.Seed(),
		Caller:   caller.Bytes(),
		Sequence: r.chain.NextSequence(),
	}
	return r.randomness.RandomBytes(ctx)
}

// insert a new creature owned by its creator and reserve against it
//
// caller must have checked the allocator and reservability
func (r *Registry) insert(trx storage.Transaction, caller *account.Account, dna genetics.DNA) (uint64, error) {
	index, err := r.allocator.next(trx)
	if nil != err {
		return 0, err
	}

	c := &Creature{
		Index:   index,
		DNA:     dna,
		Price:   0,
		ForSale: false,
		Creator: caller,
	}
	r.store.put(trx, c)
	r.store.setOwner(trx, index, caller)

	err = r.escrow.reserveOnCreate(trx, caller)
	if nil != err {
		return 0, err
	}
	return index, nil
}

// Create - a new creature with random DNA owned by the caller
func (r *Registry) Create(caller *account.Account) (uint64, error) {
	r.Lock()
	defer r.Unlock()

	r.log.Infof("create: caller: %s", caller)

	index := uint64(0)
	err := r.execute(func(trx storage.Transaction) error {
		_, err := r.allocator.peek(trx)
		if nil != err {
			return err
		}
		err = r.escrow.checkReserve(trx, caller)
		if nil != err {
			return err
		}

		index, err = r.insert(trx, caller, r.randomBytes(caller))
		return err
	})
	if nil != err {
		r.log.Warnf("create: caller: %s  error: %s", caller, err)
		return 0, err
	}

	r.log.Debugf("created: %d  owner: %s", index, caller)
	r.notify(EventCreated, caller.Bytes(), packN(index))
	return index, nil
}

// Transfer - give a creature to another account
func (r *Registry) Transfer(caller *account.Account, to *account.Account, index uint64) error {
	r.Lock()
	defer r.Unlock()

	r.log.Infof("transfer: %d  from: %s  to: %s", index, caller, to)

	err := r.execute(func(trx storage.Transaction) error {
		owner, found, err := r.store.owner(trx, index)
		if nil != err {
			return err
		}
		if !found || !owner.Equal(caller) {
			return fault.ErrNotOwner
		}

		c, found, err := r.store.get(trx, index)
		if nil != err {
			return err
		}
		if !found {
			return fault.ErrNoSuchAsset
		}

		r.store.setOwner(trx, index, to)
		if r.escrow.releaseIfCreator(trx, c, caller, to) {
			r.store.put(trx, c)
		}
		return nil
	})
	if nil != err {
		r.log.Warnf("transfer: %d  caller: %s  error: %s", index, caller, err)
		return err
	}

	r.notify(EventTransferred, caller.Bytes(), to.Bytes(), packN(index))
	return nil
}

// Breed - a new creature owned by the caller with DNA mixed from two
// existing creatures
//
// the parents are left unchanged and need not belong to the caller
func (r *Registry) Breed(caller *account.Account, parent1 uint64, parent2 uint64) (uint64, error) {
	r.Lock()
	defer r.Unlock()

	r.log.Infof("breed: caller: %s  parents: %d, %d", caller, parent1, parent2)

	index := uint64(0)
	err := r.execute(func(trx storage.Transaction) error {
		if parent1 == parent2 {
			return fault.ErrSameParent
		}

		c1, found, err := r.store.get(trx, parent1)
		if nil != err {
			return err
		}
		if !found {
			return fault.ErrNoSuchAsset
		}

		c2, found, err := r.store.get(trx, parent2)
		if nil != err {
			return err
		}
		if !found {
			return fault.ErrNoSuchAsset
		}

		_, err = r.allocator.peek(trx)
		if nil != err {
			return err
		}
		err = r.escrow.checkReserve(trx, caller)
		if nil != err {
			return err
		}

		dna := genetics.Mix(c1.DNA, c2.DNA, r.randomBytes(caller))
		index, err = r.insert(trx, caller, dna)
		return err
	})
	if nil != err {
		r.log.Warnf("breed: caller: %s  error: %s", caller, err)
		return 0, err
	}

	r.log.Debugf("bred: %d  owner: %s", index, caller)
	r.notify(EventBred, caller.Bytes(), packN(index))
	return index, nil
}

// Sell - list a creature for sale or change its price
func (r *Registry) Sell(caller *account.Account, index uint64, price uint64) error {
	r.Lock()
	defer r.Unlock()

	r.log.Infof("sell: %d  caller: %s  price: %d", index, caller, price)

	err := r.execute(func(trx storage.Transaction) error {
		return r.list(trx, caller, index, price)
	})
	if nil != err {
		r.log.Warnf("sell: %d  caller: %s  error: %s", index, caller, err)
		return err
	}

	r.notify(EventListed, packN(index), packN(price))
	return nil
}

// Buy - purchase a listed creature, paying its owner
func (r *Registry) Buy(caller *account.Account, index uint64) error {
	r.Lock()
	defer r.Unlock()

	r.log.Infof("buy: %d  caller: %s", index, caller)

	err := r.execute(func(trx storage.Transaction) error {
		_, err := r.purchase(trx, caller, index)
		return err
	})
	if nil != err {
		r.log.Warnf("buy: %d  caller: %s  error: %s", index, caller, err)
		return err
	}

	r.notify(EventPurchased, packN(index), caller.Bytes())
	return nil
}

// Get - committed creature record
func (r *Registry) Get(index uint64) (*Creature, error) {
	c, found, err := r.store.getCommitted(index)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrNoSuchAsset
	}
	return c, nil
}

// Owner - committed owner of a creature
func (r *Registry) Owner(index uint64) (*account.Account, error) {
	owner, found, err := r.store.ownerCommitted(index)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrNoSuchOwner
	}
	return owner, nil
}

// CurrentIndex - the last index issued, zero if none
func (r *Registry) CurrentIndex() uint64 {
	return r.allocator.committed()
}

// Entry - a creature with its current owner
type Entry struct {
	Creature *Creature       `json:"creature"`
	Owner    *account.Account `json:"owner"`
}

// List - committed creatures in index order beginning at start
//
// next is the index to continue from, zero once the last creature has
// been returned
func (r *Registry) List(start uint64, count int) ([]Entry, uint64, error) {
	elements, err := r.store.handles.Creatures.NewFetchCursor().Seek(indexKey(start)).Fetch(count)
	if nil != err {
		return nil, 0, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		c, err := Unpack(e.Value)
		if nil != err {
			r.log.Criticalf("list: %x  error: %s", e.Key, err)
			return nil, 0, err
		}
		owner, found, err := r.store.ownerCommitted(c.Index)
		if nil != err {
			return nil, 0, err
		}
		if !found {
			r.log.Criticalf("list: %d  has no owner", c.Index)
			return nil, 0, fault.ErrCorruptRecord
		}
		entries = append(entries, Entry{Creature: c, Owner: owner})
	}

	next := uint64(0)
	if n := len(entries); n == count {
		last := entries[n-1].Creature.Index
		if last < r.allocator.committed() {
			next = last + 1
		}
	}
	return entries, next, nil
}
