// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/creatured/chain"
)

type metadata struct {
	network     string
	testnet     bool
	connect     string
	fingerprint string
	identity    string
	password    string
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "creature-cli"
	app.Usage = "creature registry client"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "network, n",
			Value:  chain.Local,
			Usage:  " creatured `NETWORK` [creature|testing|local]",
			EnvVar: "CREATURE_CLI_NETWORK",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " creatured RPC `HOST:PORT`",
			EnvVar: "CREATURE_CLI_CONNECT",
		},
		cli.StringFlag{
			Name:  "fingerprint, f",
			Value: "",
			Usage: " expected SHA3-256 of the node certificate `HEX`",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "creature-identity.json",
			Usage:  " identity `FILE`",
			EnvVar: "CREATURE_CLI_IDENTITY",
		},
		cli.StringFlag{
			Name:   "password, p",
			Value:  "",
			Usage:  " identity `PASSWORD`",
			EnvVar: "CREATURE_CLI_PASSWORD",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "create a new identity file",
			Flags:  []cli.Flag{cli.StringFlag{Name: "description, d", Usage: " identity description `STRING`"}},
			Action: runGenerate,
		},
		{
			Name:   "account",
			Usage:  "show the account of the identity",
			Action: runAccount,
		},
		{
			Name:   "info",
			Usage:  "display creatured status",
			Action: runInfo,
		},
		{
			Name:   "balance",
			Usage:  "free and reserved balance of an account",
			Flags:  []cli.Flag{cli.StringFlag{Name: "account, a", Usage: " account to query, default is the identity `ACCOUNT`"}},
			Action: runBalance,
		},
		{
			Name:   "create",
			Usage:  "create a new random creature",
			Action: runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "give a creature to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{Name: "index, x", Usage: "*creature `INDEX`"},
				cli.StringFlag{Name: "receiver, r", Usage: "*receiving `ACCOUNT`"},
			},
			Action: runTransfer,
		},
		{
			Name:      "breed",
			Usage:     "create a creature from two parents",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{Name: "parent1, a", Usage: "*first parent `INDEX`"},
				cli.Uint64Flag{Name: "parent2, b", Usage: "*second parent `INDEX`"},
			},
			Action: runBreed,
		},
		{
			Name:      "sell",
			Usage:     "list a creature for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{Name: "index, x", Usage: "*creature `INDEX`"},
				cli.Uint64Flag{Name: "price, m", Usage: "*asking `PRICE`"},
			},
			Action: runSell,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed creature",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{cli.Uint64Flag{Name: "index, x", Usage: "*creature `INDEX`"}},
			Action:    runBuy,
		},
		{
			Name:      "get",
			Usage:     "show a creature and its owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{cli.Uint64Flag{Name: "index, x", Usage: "*creature `INDEX`"}},
			Action:    runGet,
		},
		{
			Name:  "list",
			Usage: "list creatures in index order",
			Flags: []cli.Flag{
				cli.Uint64Flag{Name: "start, x", Value: 1, Usage: " first creature `INDEX`"},
				cli.IntFlag{Name: "count", Value: 20, Usage: " maximum creatures to output `COUNT`"},
			},
			Action: runList,
		},
		{
			Name:      "claim-create",
			Usage:     "claim a proof",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{cli.StringFlag{Name: "proof, P", Usage: "*proof `HEX`"}},
			Action:    runClaimCreate,
		},
		{
			Name:      "claim-revoke",
			Usage:     "remove a claim",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{cli.StringFlag{Name: "proof, P", Usage: "*proof `HEX`"}},
			Action:    runClaimRevoke,
		},
		{
			Name:      "claim-transfer",
			Usage:     "move a claim to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "proof, P", Usage: "*proof `HEX`"},
				cli.StringFlag{Name: "receiver, r", Usage: "*receiving `ACCOUNT`"},
			},
			Action: runClaimTransfer,
		},
		{
			Name:      "claim-get",
			Usage:     "show the owner of a claim",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{cli.StringFlag{Name: "proof, P", Usage: "*proof `HEX`"}},
			Action:    runClaimGet,
		},
		{
			Name:  "watch",
			Usage: "print events broadcast by a node",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "publisher, s", Usage: "*broadcast `HOST:PORT`"},
				cli.StringFlag{Name: "server-key, k", Usage: " node public key, default is from info `KEY`"},
				cli.IntFlag{Name: "count", Value: 0, Usage: " stop after `N` events, 0 to run forever"},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display creature-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		network := c.String("network")
		if !chain.Valid(network) {
			return ErrInvalidNetwork
		}

		m := &metadata{
			network:     network,
			testnet:     chain.IsTesting(network),
			connect:     c.String("connect"),
			fingerprint: c.String("fingerprint"),
			identity:    c.String("identity"),
			password:    c.String("password"),
			verbose:     c.Bool("verbose"),
			e:           c.App.ErrWriter,
			w:           c.App.Writer,
		}
		c.App.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	return app
}
