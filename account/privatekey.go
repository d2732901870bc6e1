// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/creatured/fault"
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key pair from the random source
func NewPrivateKey(test bool, random io.Reader) (*PrivateKey, error) {
	_, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}, nil
}

// PrivateKeyFromBytes - restore a key from its 64 byte form
func PrivateKeyFromBytes(test bool, buffer []byte) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := make([]byte, ed25519.PrivateKeySize)
	copy(privateKey, buffer)
	return &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}, nil
}

// Account - the public half as an account
func (privateKey *PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])
	return &Account{
		Test:      privateKey.Test,
		PublicKey: publicKey,
	}
}

// Sign - produce a detached signature over the message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - the raw 64 byte private key
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.PrivateKey[:]
}
