// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring creatured services
//
// standard golang RPC services can be used on the client side to
// access these services over TLS
//
// services:
//
//   Creature.Create, Creature.Transfer, Creature.Breed,
//   Creature.Sell, Creature.Buy, Creature.Get
//   Claim.Create, Claim.Revoke, Claim.Transfer, Claim.Get
//   Account.Balance
//   Node.Info
//
// every call that changes state carries an origin signed by the
// caller, see package origin
package rpc
