// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/claim"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/rpc/origin"
	"github.com/bitmark-inc/creatured/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitClaim = 200
	rateBurstClaim = 100
)

// Registry - the claim operations offered over RPC
type Registry interface {
	Create(*account.Account, []byte) error
	Revoke(*account.Account, []byte) error
	Transfer(*account.Account, []byte, *account.Account) error
	Get([]byte) (*claim.Claim, error)
}

// Claim - type for the RPC
type Claim struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Verifier *origin.Verifier
	Registry Registry
}

// New - create the claim service
func New(log *logger.L, verifier *origin.Verifier, registry Registry) *Claim {
	return &Claim{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitClaim, rateBurstClaim),
		Verifier: verifier,
		Registry: registry,
	}
}

// proofs travel as hex
func decodeProof(s string) ([]byte, error) {
	proof, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidProof
	}
	return proof, nil
}

// ProofArguments - signed request naming one proof
type ProofArguments struct {
	Origin origin.Origin `json:"origin"`
	Proof  string        `json:"proof"`
}

// ProofReply - empty on success
type ProofReply struct{}

// Create - claim an unclaimed proof for the caller
func (c *Claim) Create(arguments *ProofArguments, reply *ProofReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	proof, err := decodeProof(arguments.Proof)
	if nil != err {
		return err
	}
	caller, err := c.Verifier.Verify(arguments.Origin, "Claim.Create", arguments.Proof)
	if nil != err {
		return err
	}

	c.Log.Infof("Claim.Create: caller: %s  proof: %s", caller, arguments.Proof)

	return c.Registry.Create(caller, proof)
}

// Revoke - remove a claim owned by the caller
func (c *Claim) Revoke(arguments *ProofArguments, reply *ProofReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	proof, err := decodeProof(arguments.Proof)
	if nil != err {
		return err
	}
	caller, err := c.Verifier.Verify(arguments.Origin, "Claim.Revoke", arguments.Proof)
	if nil != err {
		return err
	}

	c.Log.Infof("Claim.Revoke: caller: %s  proof: %s", caller, arguments.Proof)

	return c.Registry.Revoke(caller, proof)
}

// TransferArguments - signed request to move a claim
type TransferArguments struct {
	Origin origin.Origin `json:"origin"`
	Proof  string        `json:"proof"`
	To     string        `json:"to"`
}

// Transfer - give a claim to another known account
func (c *Claim) Transfer(arguments *TransferArguments, reply *ProofReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	proof, err := decodeProof(arguments.Proof)
	if nil != err {
		return err
	}
	caller, err := c.Verifier.Verify(arguments.Origin, "Claim.Transfer", arguments.Proof, arguments.To)
	if nil != err {
		return err
	}
	to, err := c.Verifier.Account(arguments.To)
	if nil != err {
		return err
	}

	c.Log.Infof("Claim.Transfer: proof: %s  from: %s  to: %s", arguments.Proof, caller, to)

	return c.Registry.Transfer(caller, proof, to)
}

// GetArguments - proof to look up
type GetArguments struct {
	Proof string `json:"proof"`
}

// GetReply - owner and block of a claim
type GetReply struct {
	Owner       *account.Account `json:"owner"`
	BlockNumber uint64           `json:"blockNumber,string"`
}

// Get - the current claim on a proof
func (c *Claim) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	proof, err := decodeProof(arguments.Proof)
	if nil != err {
		return err
	}
	record, err := c.Registry.Get(proof)
	if nil != err {
		return err
	}

	reply.Owner = record.Owner
	reply.BlockNumber = record.BlockNumber
	return nil
}
