// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/creatured/chain"
	"github.com/bitmark-inc/creatured/counter"
	"github.com/bitmark-inc/creatured/rpc/accounts"
	"github.com/bitmark-inc/creatured/rpc/claims"
	"github.com/bitmark-inc/creatured/rpc/creatures"
	"github.com/bitmark-inc/creatured/rpc/node"
	"github.com/bitmark-inc/creatured/rpc/origin"
	"github.com/bitmark-inc/logger"
)

// Creatures - registry operations plus the index counter
type Creatures interface {
	creatures.Registry
	node.Creatures
}

// Services - the components behind the RPC services
type Services struct {
	Chain     string
	PublicKey []byte
	Window    time.Duration
	Blocks    node.Blocks
	Creatures Creatures
	Claims    claims.Registry
	Ledger    accounts.Ledger
}

// Create - an RPC server with every service registered
//
// all signed services share one verifier so a nonce is accepted
// only once across methods
func Create(log *logger.L, version string, rpcCount *counter.Counter, services Services) *rpc.Server {

	start := time.Now().UTC()
	verifier := origin.NewVerifier(chain.IsTesting(services.Chain), services.Window)

	server := rpc.NewServer()

	_ = server.Register(creatures.New(log, verifier, services.Creatures))
	_ = server.Register(claims.New(log, verifier, services.Claims))
	_ = server.Register(accounts.New(log, verifier, services.Ledger))
	_ = server.Register(node.New(log, start, services.Chain, version, services.PublicKey, rpcCount, services.Blocks, services.Creatures))

	return server
}
