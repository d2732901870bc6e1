// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"
)

type generateReply struct {
	Account  string `json:"account"`
	Identity string `json:"identity"`
}

func runGenerate(c *cli.Context) error {

	m := getMetadata(c)

	password := m.password
	if "" == password {
		var err error
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	id, _, err := makeIdentity(m.testnet, c.String("description"), password, rand.Reader)
	if nil != err {
		return err
	}

	err = writeIdentity(m.identity, id)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "network: %s\n", m.network)
	}

	return printJson(m.w, generateReply{
		Account:  id.Account,
		Identity: m.identity,
	})
}

func runAccount(c *cli.Context) error {

	m := getMetadata(c)

	id, err := readIdentity(m.identity)
	if nil != err {
		return err
	}

	acc, err := id.account()
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"account":     acc.String(),
		"description": id.Description,
		"testnet":     acc.IsTesting(),
	})
}
