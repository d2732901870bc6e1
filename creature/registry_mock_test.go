// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/fixtures"
	"github.com/bitmark-inc/creatured/mocks"
	"github.com/bitmark-inc/creatured/random"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

type mockEnv struct {
	store      *storage.Store
	currency   *mocks.MockCurrency
	randomness *mocks.MockRandomness
	chain      *mocks.MockChain
	notifier   *mocks.MockNotifier
	registry   *creature.Registry
}

func setupMocks(ctl *gomock.Controller) *mockEnv {
	fixtures.SetupTestLogger()

	e := &mockEnv{
		store:      fixtures.NewStore(),
		currency:   mocks.NewMockCurrency(ctl),
		randomness: mocks.NewMockRandomness(ctl),
		chain:      mocks.NewMockChain(ctl),
		notifier:   mocks.NewMockNotifier(ctl),
	}

	e.registry = creature.New(
		logger.New(fixtures.LogCategory),
		e.store,
		creature.Handles{
			Creatures: e.store.Pool.Creatures,
			Owners:    e.store.Pool.Owners,
			Counters:  e.store.Pool.Counters,
		},
		creature.Configuration{ReservedAmountOnCreate: reservedAmount},
		e.currency,
		e.randomness,
		e.chain,
		e.notifier,
	)
	return e
}

func (e *mockEnv) teardown() {
	e.store.Close()
	fixtures.TeardownTestLogger()
}

// write a record and its owner directly
func (e *mockEnv) insert(c *creature.Creature, owner []byte) {
	trx, _ := e.store.Begin()
	trx.Put(e.store.Pool.Creatures, be64(c.Index), c.Pack())
	trx.Put(e.store.Pool.Owners, be64(c.Index), owner)
	_ = trx.Commit()
}

func TestCreateRandomContext(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := setupMocks(ctl)
	defer e.teardown()

	alice := fixtures.Alice.Account
	seed := []byte("block seed")

	gomock.InOrder(
		e.currency.EXPECT().CanReserve(gomock.Any(), alice, uint64(reservedAmount)).Return(true),
		e.chain.EXPECT().Seed().Return(seed),
		e.chain.EXPECT().NextSequence().Return(uint64(7)),
		e.randomness.EXPECT().RandomBytes(random.Context{
			Seed:     seed,
			Caller:   alice.Bytes(),
			Sequence: 7,
		}).Return(dna2),
		e.currency.EXPECT().Reserve(gomock.Any(), alice, uint64(reservedAmount)).Return(nil),
		e.notifier.EXPECT().Send(creature.EventCreated, alice.Bytes(), be64(1)),
	)

	index, err := e.registry.Create(alice)
	assert.Nil(t, err, "create")
	assert.Equal(t, uint64(1), index, "index")

	c, err := e.registry.Get(index)
	assert.Nil(t, err, "get")
	assert.Equal(t, dna2, c.DNA, "dna")
}

func TestCreateReserveFailureAborts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := setupMocks(ctl)
	defer e.teardown()

	alice := fixtures.Alice.Account

	e.currency.EXPECT().CanReserve(gomock.Any(), alice, uint64(reservedAmount)).Return(true)
	e.chain.EXPECT().Seed().Return([]byte{})
	e.chain.EXPECT().NextSequence().Return(uint64(1))
	e.randomness.EXPECT().RandomBytes(gomock.Any()).Return(dna1)
	e.currency.EXPECT().Reserve(gomock.Any(), alice, uint64(reservedAmount)).Return(fault.ErrBalanceOverflow)

	before, _ := e.store.Dump()

	_, err := e.registry.Create(alice)
	assert.Equal(t, fault.ErrBalanceOverflow, err, "create")

	after, _ := e.store.Dump()
	assert.Equal(t, before, after, "staged record must be discarded")
	assert.Equal(t, uint64(0), e.registry.CurrentIndex(), "counter")
}

func TestCreateNoRandomnessOnFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := setupMocks(ctl)
	defer e.teardown()

	alice := fixtures.Alice.Account

	// no sequence number may be consumed when the checks fail
	e.currency.EXPECT().CanReserve(gomock.Any(), alice, uint64(reservedAmount)).Return(false)

	_, err := e.registry.Create(alice)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "create")
}

func TestBuyPaymentFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := setupMocks(ctl)
	defer e.teardown()

	alice := fixtures.Alice.Account
	bob := fixtures.Bob.Account

	e.insert(&creature.Creature{
		Index:   1,
		DNA:     dna1,
		Price:   50,
		ForSale: true,
		Creator: alice,
	}, alice.Bytes())

	e.currency.EXPECT().Transfer(gomock.Any(), bob, alice, uint64(50)).Return(fault.ErrInsufficientBalance)

	before, _ := e.store.Dump()

	err := e.registry.Buy(bob, 1)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "buy")

	after, _ := e.store.Dump()
	assert.Equal(t, before, after, "nothing changed")
}

func TestBuyReleasesCreatorReservation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := setupMocks(ctl)
	defer e.teardown()

	alice := fixtures.Alice.Account
	bob := fixtures.Bob.Account

	e.insert(&creature.Creature{
		Index:   1,
		DNA:     dna1,
		Price:   50,
		ForSale: true,
		Creator: alice,
	}, alice.Bytes())

	gomock.InOrder(
		e.currency.EXPECT().Transfer(gomock.Any(), bob, alice, uint64(50)).Return(nil),
		e.currency.EXPECT().Unreserve(gomock.Any(), alice, uint64(reservedAmount)).Return(uint64(reservedAmount)),
		e.notifier.EXPECT().Send(creature.EventPurchased, be64(1), bob.Bytes()),
	)

	err := e.registry.Buy(bob, 1)
	assert.Nil(t, err, "buy")

	c, err := e.registry.Get(1)
	assert.Nil(t, err, "get")
	assert.False(t, c.ForSale, "sold")
	assert.True(t, c.Released, "reservation released")
	assert.Equal(t, uint64(50), c.Price, "price kept")
}

func TestTransferNonCreatorNoRelease(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := setupMocks(ctl)
	defer e.teardown()

	alice := fixtures.Alice.Account
	bob := fixtures.Bob.Account
	charlie := fixtures.Charlie.Account

	// owned by bob, created by alice
	e.insert(&creature.Creature{
		Index:   1,
		DNA:     dna1,
		Creator: alice,
	}, bob.Bytes())

	// no currency calls expected
	e.notifier.EXPECT().Send(creature.EventTransferred, bob.Bytes(), charlie.Bytes(), be64(1))

	err := e.registry.Transfer(bob, charlie, 1)
	assert.Nil(t, err, "transfer")
}
