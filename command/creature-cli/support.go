// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/creatured/account"
)

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// unlock the identity for signing
func (m *metadata) privateKey() (*account.PrivateKey, error) {
	id, err := readIdentity(m.identity)
	if nil != err {
		return nil, err
	}

	acc, err := id.account()
	if nil != err {
		return nil, err
	}
	if acc.IsTesting() != m.testnet {
		return nil, ErrWrongNetworkForAccount
	}

	password, err := getPassword(m.password)
	if nil != err {
		return nil, err
	}

	privateKey, err := id.unlock(password)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", acc)
	}
	return privateKey, nil
}

func (m *metadata) dial() (*client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return newClient(m.connect, m.fingerprint)
}

// a signed call: unlock, connect, call, print the reply
func (m *metadata) signedCall(method string, build func(*account.PrivateKey) interface{}, reply interface{}) error {
	privateKey, err := m.privateKey()
	if nil != err {
		return err
	}
	return m.call(method, build(privateKey), reply)
}

func (m *metadata) call(method string, arguments interface{}, reply interface{}) error {
	client, err := m.dial()
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "%s:\n", method)
		printJson(m.e, arguments)
	}

	err = client.call(method, arguments, reply)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func requireString(c *cli.Context, name string) (string, error) {
	s := c.String(name)
	if "" == s {
		return "", fmt.Errorf("%s: %s", ErrMissingParameter, name)
	}
	return s, nil
}

func requireUint64(c *cli.Context, name string) (uint64, error) {
	if !c.IsSet(name) {
		return 0, fmt.Errorf("%s: %s", ErrMissingParameter, name)
	}
	return c.Uint64(name), nil
}
