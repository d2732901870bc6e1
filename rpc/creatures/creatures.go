// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creatures

import (
	"strconv"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/rpc/origin"
	"github.com/bitmark-inc/creatured/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitCreature = 200
	rateBurstCreature = 100

	maximumListCount = 100
)

// Registry - the creature operations offered over RPC
type Registry interface {
	Create(*account.Account) (uint64, error)
	Transfer(*account.Account, *account.Account, uint64) error
	Breed(*account.Account, uint64, uint64) (uint64, error)
	Sell(*account.Account, uint64, uint64) error
	Buy(*account.Account, uint64) error
	Get(uint64) (*creature.Creature, error)
	Owner(uint64) (*account.Account, error)
	List(uint64, int) ([]creature.Entry, uint64, error)
}

// Creature - type for the RPC
type Creature struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Verifier *origin.Verifier
	Registry Registry
}

// New - create the creature service
func New(log *logger.L, verifier *origin.Verifier, registry Registry) *Creature {
	return &Creature{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitCreature, rateBurstCreature),
		Verifier: verifier,
		Registry: registry,
	}
}

func n(value uint64) string {
	return strconv.FormatUint(value, 10)
}

// ---

// CreateArguments - signed request for a new random creature
type CreateArguments struct {
	Origin origin.Origin `json:"origin"`
}

// CreateReply - index of the new creature
type CreateReply struct {
	Index uint64 `json:"index,string"`
}

// Create - a new creature owned by the caller
func (c *Creature) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := c.Verifier.Verify(arguments.Origin, "Creature.Create")
	if nil != err {
		return err
	}

	c.Log.Infof("Creature.Create: caller: %s", caller)

	index, err := c.Registry.Create(caller)
	if nil != err {
		return err
	}
	reply.Index = index
	return nil
}

// ---

// TransferArguments - signed request to give a creature away
type TransferArguments struct {
	Origin origin.Origin `json:"origin"`
	To     string        `json:"to"`
	Index  uint64        `json:"index,string"`
}

// TransferReply - empty on success
type TransferReply struct{}

// Transfer - give a creature to another account
func (c *Creature) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := c.Verifier.Verify(arguments.Origin, "Creature.Transfer", arguments.To, n(arguments.Index))
	if nil != err {
		return err
	}
	to, err := c.Verifier.Account(arguments.To)
	if nil != err {
		return err
	}

	c.Log.Infof("Creature.Transfer: %d  from: %s  to: %s", arguments.Index, caller, to)

	return c.Registry.Transfer(caller, to, arguments.Index)
}

// ---

// BreedArguments - signed request to mix two creatures
type BreedArguments struct {
	Origin  origin.Origin `json:"origin"`
	Parent1 uint64        `json:"parent1,string"`
	Parent2 uint64        `json:"parent2,string"`
}

// BreedReply - index of the child
type BreedReply struct {
	Index uint64 `json:"index,string"`
}

// Breed - a new creature from two parents
func (c *Creature) Breed(arguments *BreedArguments, reply *BreedReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := c.Verifier.Verify(arguments.Origin, "Creature.Breed", n(arguments.Parent1), n(arguments.Parent2))
	if nil != err {
		return err
	}

	c.Log.Infof("Creature.Breed: caller: %s  parents: %d, %d", caller, arguments.Parent1, arguments.Parent2)

	index, err := c.Registry.Breed(caller, arguments.Parent1, arguments.Parent2)
	if nil != err {
		return err
	}
	reply.Index = index
	return nil
}

// ---

// SellArguments - signed request to list a creature
type SellArguments struct {
	Origin origin.Origin `json:"origin"`
	Index  uint64        `json:"index,string"`
	Price  uint64        `json:"price,string"`
}

// SellReply - empty on success
type SellReply struct{}

// Sell - list or re-price a creature
func (c *Creature) Sell(arguments *SellArguments, reply *SellReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := c.Verifier.Verify(arguments.Origin, "Creature.Sell", n(arguments.Index), n(arguments.Price))
	if nil != err {
		return err
	}

	c.Log.Infof("Creature.Sell: %d  caller: %s  price: %d", arguments.Index, caller, arguments.Price)

	return c.Registry.Sell(caller, arguments.Index, arguments.Price)
}

// ---

// BuyArguments - signed request to buy a listed creature
type BuyArguments struct {
	Origin origin.Origin `json:"origin"`
	Index  uint64        `json:"index,string"`
}

// BuyReply - empty on success
type BuyReply struct{}

// Buy - purchase a listed creature at its price
func (c *Creature) Buy(arguments *BuyArguments, reply *BuyReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	caller, err := c.Verifier.Verify(arguments.Origin, "Creature.Buy", n(arguments.Index))
	if nil != err {
		return err
	}

	c.Log.Infof("Creature.Buy: %d  caller: %s", arguments.Index, caller)

	return c.Registry.Buy(caller, arguments.Index)
}

// ---

// GetArguments - index to look up
type GetArguments struct {
	Index uint64 `json:"index,string"`
}

// GetReply - the creature and its owner
type GetReply struct {
	Creature *creature.Creature `json:"creature"`
	Owner    *account.Account   `json:"owner"`
}

// Get - a creature and its current owner
func (c *Creature) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	record, err := c.Registry.Get(arguments.Index)
	if nil != err {
		return err
	}
	owner, err := c.Registry.Owner(arguments.Index)
	if nil != err {
		return err
	}

	reply.Creature = record
	reply.Owner = owner
	return nil
}

// ---

// ListArguments - first index and page size
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - one page of creatures
type ListReply struct {
	Creatures []creature.Entry `json:"creatures"`
	Next      uint64           `json:"next,string"`
}

// List - creatures with their owners in index order
func (c *Creature) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(c.Limiter, arguments.Count, maximumListCount); nil != err {
		return err
	}

	entries, next, err := c.Registry.List(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Creatures = entries
	reply.Next = next
	return nil
}
