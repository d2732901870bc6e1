// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"encoding/hex"
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

// DefaultMaximumLength - used when the configuration gives none
const DefaultMaximumLength = 512

// event commands, parameters are account bytes, the raw proof and
// 8 byte big endian block numbers
const (
	EventCreated     = "claimCreated"     // owner, proof
	EventRevoked     = "claimRevoked"     // owner, proof
	EventTransferred = "claimTransferred" // from, to, proof
)

// Configuration - claim parameters
type Configuration struct {
	MaximumLength int `gluamapper:"maximum_length" json:"maximum_length"`
}

// Transactor - source of storage transactions
type Transactor interface {
	Begin() (storage.Transaction, error)
}

// Accounts - decides whether a receiver is known
type Accounts interface {
	Exists(storage.Transaction, *account.Account) bool
}

// Chain - current block number
type Chain interface {
	Number() uint64
}

// Notifier - receives one event per committed operation
type Notifier interface {
	Send(command string, parameters ...[]byte)
}

// Registry - proof claims
type Registry struct {
	sync.Mutex

	log *logger.L

	db        Transactor
	pool      *storage.PoolHandle
	accounts  Accounts
	chain     Chain
	notifier  Notifier
	maxLength int64
}

// New - create a claim registry over the proofs pool
//
// notifier may be nil
func New(
	log *logger.L,
	db Transactor,
	pool *storage.PoolHandle,
	configuration Configuration,
	accounts Accounts,
	chain Chain,
	notifier Notifier,
) *Registry {
	r := &Registry{
		log:      log,
		db:       db,
		pool:     pool,
		accounts: accounts,
		chain:    chain,
		notifier: notifier,
	}
	r.SetMaximumLength(configuration.MaximumLength)
	return r
}

// SetMaximumLength - change the proof length limit while running
//
// values <= 0 select the default
func (r *Registry) SetMaximumLength(length int) {
	if length <= 0 {
		length = DefaultMaximumLength
	}
	atomic.StoreInt64(&r.maxLength, int64(length))
}

// MaximumLength - the current proof length limit
func (r *Registry) MaximumLength() int {
	return int(atomic.LoadInt64(&r.maxLength))
}

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

func (r *Registry) read(trx storage.Transaction, proof []byte) (*Claim, error) {
	buffer, found := trx.Get(r.pool, proof)
	if !found {
		return nil, fault.ErrNoSuchProof
	}
	return Unpack(buffer)
}

// read the claim and ensure the caller owns it
func (r *Registry) owned(trx storage.Transaction, caller *account.Account, proof []byte) (*Claim, error) {
	c, err := r.read(trx, proof)
	if nil != err {
		return nil, err
	}
	if !c.Owner.Equal(caller) {
		return nil, fault.ErrNotProofOwner
	}
	return c, nil
}

// Create - claim an unclaimed proof
func (r *Registry) Create(caller *account.Account, proof []byte) error {
	r.Lock()
	defer r.Unlock()

	r.log.Infof("create: proof: %x  caller: %s", proof, caller)

	err := r.execute(func(trx storage.Transaction) error {
		if len(proof) > r.MaximumLength() {
			return fault.ErrProofTooLong
		}
		if trx.Has(r.pool, proof) {
			return fault.ErrProofAlreadyClaimed
		}
		c := &Claim{
			Owner:       caller,
			BlockNumber: r.chain.Number(),
		}
		trx.Put(r.pool, proof, c.Pack())
		return nil
	})
	if nil != err {
		r.log.Warnf("create: proof: %x  error: %s", proof, err)
		return err
	}

	r.notify(EventCreated, caller.Bytes(), proof)
	return nil
}

// Revoke - remove a claim owned by the caller
func (r *Registry) Revoke(caller *account.Account, proof []byte) error {
	r.Lock()
	defer r.Unlock()

	r.log.Infof("revoke: proof: %x  caller: %s", proof, caller)

	err := r.execute(func(trx storage.Transaction) error {
		_, err := r.owned(trx, caller, proof)
		if nil != err {
			return err
		}
		trx.Delete(r.pool, proof)
		return nil
	})
	if nil != err {
		r.log.Warnf("revoke: proof: %x  error: %s", proof, err)
		return err
	}

	r.notify(EventRevoked, caller.Bytes(), proof)
	return nil
}

// Transfer - give a claim to a known account, which may be the caller
func (r *Registry) Transfer(caller *account.Account, proof []byte, receiver *account.Account) error {
	r.Lock()
	defer r.Unlock()

	r.log.Infof("transfer: proof: %x  from: %s  to: %s", proof, caller, receiver)

	err := r.execute(func(trx storage.Transaction) error {
		_, err := r.owned(trx, caller, proof)
		if nil != err {
			return err
		}
		if !r.accounts.Exists(trx, receiver) {
			return fault.ErrProofReceiverNotExist
		}
		c := &Claim{
			Owner:       receiver,
			BlockNumber: r.chain.Number(),
		}
		trx.Put(r.pool, proof, c.Pack())
		return nil
	})
	if nil != err {
		r.log.Warnf("transfer: proof: %x  error: %s", proof, err)
		return err
	}

	r.notify(EventTransferred, caller.Bytes(), receiver.Bytes(), proof)
	return nil
}

// Get - committed claim of a proof
func (r *Registry) Get(proof []byte) (*Claim, error) {
	buffer, found := r.pool.Get(proof)
	if !found {
		return nil, fault.ErrNoSuchProof
	}
	c, err := Unpack(buffer)
	if nil != err {
		r.log.Criticalf("get: proof: %s  error: %s", hex.EncodeToString(proof), err)
	}
	return c, err
}

func (r *Registry) notify(command string, parameters ...[]byte) {
	if nil == r.notifier {
		return
	}
	r.notifier.Send(command, parameters...)
}
