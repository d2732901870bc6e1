// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/balance"
	"github.com/bitmark-inc/creatured/block"
	"github.com/bitmark-inc/creatured/claim"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/fixtures"
	"github.com/bitmark-inc/creatured/messagebus"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

var proof = []byte{0, 1}

type testEnv struct {
	store    *storage.Store
	ledger   *balance.Ledger
	chain    *block.Chain
	registry *claim.Registry
	bus      *messagebus.BroadcastQueue
	events   <-chan messagebus.Message
}

func setup(t *testing.T) *testEnv {
	fixtures.SetupTestLogger()

	store := fixtures.NewStore()
	log := logger.New(fixtures.LogCategory)

	ledger := balance.New(log, balance.Handles{
		Free:     store.Pool.FreeBalances,
		Reserved: store.Pool.ReservedBalances,
		Accounts: store.Pool.Accounts,
	})

	chain, err := block.New(log, store, [block.SeedLength]byte{}, time.Minute)
	if nil != err {
		t.Fatalf("block setup error: %s", err)
	}

	bus := messagebus.NewBroadcast()
	events := bus.Chan(10)

	registry := claim.New(log, store, store.Pool.Proofs, claim.Configuration{MaximumLength: 8}, ledger, chain, bus)

	return &testEnv{
		store:    store,
		ledger:   ledger,
		chain:    chain,
		registry: registry,
		bus:      bus,
		events:   events,
	}
}

func (e *testEnv) teardown() {
	e.bus.Release()
	e.store.Close()
	fixtures.TeardownTestLogger()
}

// make an account known to the ledger
func (e *testEnv) register(t *testing.T, acc *account.Account) {
	trx, _ := e.store.Begin()
	err := e.ledger.Deposit(trx, acc, 1)
	if nil != err {
		t.Fatalf("deposit error: %s", err)
	}
	_ = trx.Commit()
}

func (e *testEnv) assertOwner(t *testing.T, owner *account.Account) {
	c, err := e.registry.Get(proof)
	assert.Nil(t, err, "get")
	assert.True(t, owner.Equal(c.Owner), "owner: %s  expected: %s", c.Owner, owner)
	assert.Equal(t, e.chain.Number(), c.BlockNumber, "block number")
}

func (e *testEnv) assertFailsUnchanged(t *testing.T, expected error, operation func() error) {
	before, _ := e.store.Dump()
	assert.Equal(t, expected, operation(), "operation error")
	after, _ := e.store.Dump()
	assert.Equal(t, before, after, "database changed by failed operation")

	select {
	case m := <-e.events:
		t.Errorf("unexpected event: %s", m.Command)
	default:
	}
}

func TestCreateClaim(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	alice := fixtures.Alice.Account

	err := e.registry.Create(alice, proof)
	assert.Nil(t, err, "create")
	e.assertOwner(t, alice)

	m := <-e.events
	assert.Equal(t, claim.EventCreated, m.Command, "event")
	assert.Equal(t, [][]byte{alice.Bytes(), proof}, m.Parameters, "event parameters")

	e.assertFailsUnchanged(t, fault.ErrProofAlreadyClaimed, func() error {
		return e.registry.Create(alice, proof)
	})
	e.assertFailsUnchanged(t, fault.ErrProofAlreadyClaimed, func() error {
		return e.registry.Create(fixtures.Bob.Account, proof)
	})
}

func TestCreateClaimTooLong(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	alice := fixtures.Alice.Account
	long := bytes.Repeat([]byte{0xaa}, 9)

	e.assertFailsUnchanged(t, fault.ErrProofTooLong, func() error {
		return e.registry.Create(alice, long)
	})

	e.registry.SetMaximumLength(9)
	assert.Equal(t, 9, e.registry.MaximumLength(), "raised limit")
	assert.Nil(t, e.registry.Create(alice, long), "create at new limit")

	e.registry.SetMaximumLength(0)
	assert.Equal(t, claim.DefaultMaximumLength, e.registry.MaximumLength(), "default limit")
}

func TestRevokeClaim(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	alice := fixtures.Alice.Account
	bob := fixtures.Bob.Account

	e.assertFailsUnchanged(t, fault.ErrNoSuchProof, func() error {
		return e.registry.Revoke(alice, proof)
	})

	_ = e.registry.Create(alice, proof)
	<-e.events

	e.assertFailsUnchanged(t, fault.ErrNotProofOwner, func() error {
		return e.registry.Revoke(bob, proof)
	})

	err := e.registry.Revoke(alice, proof)
	assert.Nil(t, err, "revoke")

	m := <-e.events
	assert.Equal(t, claim.EventRevoked, m.Command, "event")

	_, err = e.registry.Get(proof)
	assert.Equal(t, fault.ErrNoSuchProof, err, "revoked claim")

	// revoked proofs may be claimed again
	assert.Nil(t, e.registry.Create(bob, proof), "claim again")
}

func TestTransferClaim(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	alice := fixtures.Alice.Account
	bob := fixtures.Bob.Account
	charlie := fixtures.Charlie.Account

	e.register(t, bob)

	e.assertFailsUnchanged(t, fault.ErrNoSuchProof, func() error {
		return e.registry.Transfer(alice, proof, bob)
	})

	_ = e.registry.Create(alice, proof)
	<-e.events

	e.assertFailsUnchanged(t, fault.ErrNotProofOwner, func() error {
		return e.registry.Transfer(charlie, proof, bob)
	})
	e.assertOwner(t, alice)

	e.assertFailsUnchanged(t, fault.ErrProofReceiverNotExist, func() error {
		return e.registry.Transfer(alice, proof, charlie)
	})
	e.assertOwner(t, alice)

	err := e.chain.Advance()
	assert.Nil(t, err, "advance block")

	err = e.registry.Transfer(alice, proof, bob)
	assert.Nil(t, err, "transfer")
	e.assertOwner(t, bob)

	m := <-e.events
	assert.Equal(t, claim.EventTransferred, m.Command, "event")
	assert.Equal(t, [][]byte{alice.Bytes(), bob.Bytes(), proof}, m.Parameters, "event parameters")
}

func TestTransferClaimToSelf(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	alice := fixtures.Alice.Account
	e.register(t, alice)

	_ = e.registry.Create(alice, proof)

	err := e.registry.Transfer(alice, proof, alice)
	assert.Nil(t, err, "transfer to self")
	e.assertOwner(t, alice)
}

func TestUnpackCorrupt(t *testing.T) {
	c := &claim.Claim{
		Owner:       fixtures.Alice.Account,
		BlockNumber: 0x0102,
	}
	packed := c.Pack()
	assert.Equal(t, 33+8, len(packed), "packed length")

	unpacked, err := claim.Unpack(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, c, unpacked, "round trip")

	for _, buffer := range [][]byte{nil, packed[:8], packed[1:], packed[:len(packed)-1]} {
		_, err := claim.Unpack(buffer)
		assert.Equal(t, fault.ErrCorruptRecord, err, "corrupt: %x", buffer)
	}
}
