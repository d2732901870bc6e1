// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/rpc/claims"
	"github.com/bitmark-inc/creatured/rpc/origin"
)

func runClaimCreate(c *cli.Context) error {
	return claimProof(c, "Claim.Create")
}

func runClaimRevoke(c *cli.Context) error {
	return claimProof(c, "Claim.Revoke")
}

// create and revoke sign only the proof
func claimProof(c *cli.Context, method string) error {
	m := getMetadata(c)

	proof, err := requireString(c, "proof")
	if nil != err {
		return err
	}

	return m.signedCall(method, func(key *account.PrivateKey) interface{} {
		return &claims.ProofArguments{
			Origin: origin.Sign(key, time.Now(), method, proof),
			Proof:  proof,
		}
	}, &claims.ProofReply{})
}

func runClaimTransfer(c *cli.Context) error {
	m := getMetadata(c)

	proof, err := requireString(c, "proof")
	if nil != err {
		return err
	}
	to, err := requireString(c, "receiver")
	if nil != err {
		return err
	}

	return m.signedCall("Claim.Transfer", func(key *account.PrivateKey) interface{} {
		return &claims.TransferArguments{
			Origin: origin.Sign(key, time.Now(), "Claim.Transfer", proof, to),
			Proof:  proof,
			To:     to,
		}
	}, &claims.ProofReply{})
}

func runClaimGet(c *cli.Context) error {
	m := getMetadata(c)

	proof, err := requireString(c, "proof")
	if nil != err {
		return err
	}

	return m.call("Claim.Get", &claims.GetArguments{Proof: proof}, &claims.GetReply{})
}
