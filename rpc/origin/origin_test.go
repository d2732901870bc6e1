// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package origin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/fixtures"
)

func TestMessage(t *testing.T) {
	m := Message("Creature.Sell", "abc", 42, "7", "100")
	assert.Equal(t, "Creature.Sell|abc|42|7|100", string(m), "message")

	m = Message("Creature.Create", "abc", 1)
	assert.Equal(t, "Creature.Create|abc|1", string(m), "no fields")
}

func TestVerify(t *testing.T) {
	now := time.Unix(1600000000, 0)
	v := NewVerifier(true, time.Minute)
	v.now = func() time.Time { return now }

	alice := fixtures.Alice

	o := Sign(alice.PrivateKey, now, "Creature.Buy", "7")
	caller, err := v.Verify(o, "Creature.Buy", "7")
	assert.Nil(t, err, "verify")
	assert.True(t, alice.Account.Equal(caller), "caller")

	_, err = v.Verify(o, "Creature.Buy", "7")
	assert.Equal(t, fault.ErrReplayedRequest, err, "replay")

	o = Sign(alice.PrivateKey, now.Add(time.Second), "Creature.Buy", "7")
	_, err = v.Verify(o, "Creature.Buy", "8")
	assert.Equal(t, fault.ErrInvalidSignature, err, "different field")

	_, err = v.Verify(o, "Creature.Sell", "7")
	assert.Equal(t, fault.ErrInvalidSignature, err, "different method")

	// a rejected forgery does not use up the nonce
	_, err = v.Verify(o, "Creature.Buy", "7")
	assert.Nil(t, err, "genuine request after forgery")

	o = Sign(alice.PrivateKey, now.Add(2*time.Second), "Creature.Buy", "7")
	o.Caller = fixtures.Bob.Account.String()
	_, err = v.Verify(o, "Creature.Buy", "7")
	assert.Equal(t, fault.ErrInvalidSignature, err, "signed by someone else")
}

func TestVerifyWindow(t *testing.T) {
	now := time.Unix(1600000000, 0)
	v := NewVerifier(true, time.Minute)
	v.now = func() time.Time { return now }

	key := fixtures.Alice.PrivateKey

	_, err := v.Verify(Sign(key, now.Add(-2*time.Minute), "Node.Info"), "Node.Info")
	assert.Equal(t, fault.ErrInvalidNonce, err, "too old")

	_, err = v.Verify(Sign(key, now.Add(2*time.Minute), "Node.Info"), "Node.Info")
	assert.Equal(t, fault.ErrInvalidNonce, err, "in the future")

	_, err = v.Verify(Sign(key, now.Add(-30*time.Second), "Node.Info"), "Node.Info")
	assert.Nil(t, err, "inside window")
}

func TestVerifyBadCaller(t *testing.T) {
	v := NewVerifier(true, 0)
	assert.Equal(t, DefaultWindow, v.window, "default window")

	o := Sign(fixtures.Alice.PrivateKey, time.Now(), "Node.Info")
	o.Caller = "not-an-account"
	_, err := v.Verify(o, "Node.Info")
	assert.Equal(t, fault.ErrNoSuchAccount, err, "bad caller")
}

func TestVerifyWrongNetwork(t *testing.T) {
	v := NewVerifier(false, time.Minute)

	_, err := v.Verify(Sign(fixtures.Alice.PrivateKey, time.Now(), "Node.Info"), "Node.Info")
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "test account on live network")

	_, err = v.Account(fixtures.Bob.Account.String())
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "receiver")
}
