// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/rpc/origin"
	"github.com/bitmark-inc/creatured/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitAccount = 200
	rateBurstAccount = 100
)

// Ledger - committed balances
type Ledger interface {
	Balance(*account.Account) (uint64, uint64, bool)
}

// Account - type for the RPC
type Account struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Verifier *origin.Verifier
	Ledger   Ledger
}

// New - create the account service
func New(log *logger.L, verifier *origin.Verifier, ledger Ledger) *Account {
	return &Account{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAccount, rateBurstAccount),
		Verifier: verifier,
		Ledger:   ledger,
	}
}

// BalanceArguments - account to query
type BalanceArguments struct {
	Account string `json:"account"`
}

// BalanceReply - free and reserved amounts
type BalanceReply struct {
	Free     uint64 `json:"free,string"`
	Reserved uint64 `json:"reserved,string"`
	Exists   bool   `json:"exists"`
}

// Balance - current balance of any account, unknown accounts are zero
func (a *Account) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	acc, err := a.Verifier.Account(arguments.Account)
	if nil != err {
		return err
	}

	reply.Free, reply.Reserved, reply.Exists = a.Ledger.Balance(acc)
	return nil
}
