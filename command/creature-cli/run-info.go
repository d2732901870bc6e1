// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/creatured/rpc/accounts"
	"github.com/bitmark-inc/creatured/rpc/node"
)

func runInfo(c *cli.Context) error {
	m := getMetadata(c)
	return m.call("Node.Info", &node.InfoArguments{}, &node.InfoReply{})
}

func runBalance(c *cli.Context) error {
	m := getMetadata(c)

	acc := c.String("account")
	if "" == acc {
		id, err := readIdentity(m.identity)
		if nil != err {
			return err
		}
		acc = id.Account
	}

	return m.call("Account.Balance", &accounts.BalanceArguments{Account: acc}, &accounts.BalanceReply{})
}
