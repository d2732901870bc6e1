// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/rpc/creatures"
	"github.com/bitmark-inc/creatured/rpc/origin"
)

// signed numeric fields are decimal strings
func n(value uint64) string {
	return strconv.FormatUint(value, 10)
}

func runCreate(c *cli.Context) error {
	m := getMetadata(c)

	return m.signedCall("Creature.Create", func(key *account.PrivateKey) interface{} {
		return &creatures.CreateArguments{
			Origin: origin.Sign(key, time.Now(), "Creature.Create"),
		}
	}, &creatures.CreateReply{})
}

func runTransfer(c *cli.Context) error {
	m := getMetadata(c)

	index, err := requireUint64(c, "index")
	if nil != err {
		return err
	}
	to, err := requireString(c, "receiver")
	if nil != err {
		return err
	}

	return m.signedCall("Creature.Transfer", func(key *account.PrivateKey) interface{} {
		return &creatures.TransferArguments{
			Origin: origin.Sign(key, time.Now(), "Creature.Transfer", to, n(index)),
			To:     to,
			Index:  index,
		}
	}, &creatures.TransferReply{})
}

func runBreed(c *cli.Context) error {
	m := getMetadata(c)

	parent1, err := requireUint64(c, "parent1")
	if nil != err {
		return err
	}
	parent2, err := requireUint64(c, "parent2")
	if nil != err {
		return err
	}

	return m.signedCall("Creature.Breed", func(key *account.PrivateKey) interface{} {
		return &creatures.BreedArguments{
			Origin:  origin.Sign(key, time.Now(), "Creature.Breed", n(parent1), n(parent2)),
			Parent1: parent1,
			Parent2: parent2,
		}
	}, &creatures.BreedReply{})
}

func runSell(c *cli.Context) error {
	m := getMetadata(c)

	index, err := requireUint64(c, "index")
	if nil != err {
		return err
	}
	price, err := requireUint64(c, "price")
	if nil != err {
		return err
	}

	return m.signedCall("Creature.Sell", func(key *account.PrivateKey) interface{} {
		return &creatures.SellArguments{
			Origin: origin.Sign(key, time.Now(), "Creature.Sell", n(index), n(price)),
			Index:  index,
			Price:  price,
		}
	}, &creatures.SellReply{})
}

func runBuy(c *cli.Context) error {
	m := getMetadata(c)

	index, err := requireUint64(c, "index")
	if nil != err {
		return err
	}

	return m.signedCall("Creature.Buy", func(key *account.PrivateKey) interface{} {
		return &creatures.BuyArguments{
			Origin: origin.Sign(key, time.Now(), "Creature.Buy", n(index)),
			Index:  index,
		}
	}, &creatures.BuyReply{})
}

func runGet(c *cli.Context) error {
	m := getMetadata(c)

	index, err := requireUint64(c, "index")
	if nil != err {
		return err
	}

	return m.call("Creature.Get", &creatures.GetArguments{Index: index}, &creatures.GetReply{})
}

func runList(c *cli.Context) error {
	m := getMetadata(c)

	arguments := &creatures.ListArguments{
		Start: c.Uint64("start"),
		Count: c.Int("count"),
	}
	return m.call("Creature.List", arguments, &creatures.ListReply{})
}
