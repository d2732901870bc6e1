// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package origin - authenticate the account behind an RPC request
//
// a request is signed by the caller's ed25519 key over the message:
//
//   Method|caller|nonce|field|field...
//
// where caller is the base58 account and nonce is the signing time in
// nanoseconds since the Unix epoch.  A nonce is accepted once, and only
// if it is within the verifier's window of the current time.
package origin

import (
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
)

// DefaultWindow - accepted clock difference between client and server
const DefaultWindow = 5 * time.Minute

// Origin - the signed caller part of a request
type Origin struct {
	Caller    string            `json:"caller"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Verifier - checks signatures and rejects replays
type Verifier struct {
	testing bool
	window  time.Duration
	seen    *cache.Cache
	now     func() time.Time
}

// NewVerifier - accept accounts of the given network and nonces
// within window of the current time
func NewVerifier(testing bool, window time.Duration) *Verifier {
	if window <= 0 {
		window = DefaultWindow
	}
	// a nonce older than the window is rejected anyway so it need
	// not be remembered any longer than twice the window
	return &Verifier{
		testing: testing,
		window:  window,
		seen:    cache.New(2*window, window),
		now:     time.Now,
	}
}

// Message - the bytes that are signed
func Message(method string, caller string, nonce uint64, fields ...string) []byte {
	parts := make([]string, 0, 3+len(fields))
	parts = append(parts, method, caller, strconv.FormatUint(nonce, 10))
	parts = append(parts, fields...)
	return []byte(strings.Join(parts, "|"))
}

// Sign - build the origin of a request made at the given time
func Sign(privateKey *account.PrivateKey, now time.Time, method string, fields ...string) Origin {
	caller := privateKey.Account().String()
	nonce := uint64(now.UnixNano())
	return Origin{
		Caller:    caller,
		Nonce:     nonce,
		Signature: privateKey.Sign(Message(method, caller, nonce, fields...)),
	}
}

// Verify - the account that signed the request
func (v *Verifier) Verify(o Origin, method string, fields ...string) (*account.Account, error) {
	caller, err := v.Account(o.Caller)
	if nil != err {
		return nil, err
	}

	now := v.now().UnixNano()
	window := v.window.Nanoseconds()
	nonce := int64(o.Nonce)
	if nonce < 0 || nonce < now-window || nonce > now+window {
		return nil, fault.ErrInvalidNonce
	}

	err = caller.CheckSignature(Message(method, o.Caller, o.Nonce, fields...), o.Signature)
	if nil != err {
		return nil, err
	}

	// Add fails if the key is present
	key := o.Caller + "|" + strconv.FormatUint(o.Nonce, 10)
	if err := v.seen.Add(key, struct{}{}, cache.DefaultExpiration); nil != err {
		return nil, fault.ErrReplayedRequest
	}

	return caller, nil
}

// Account - decode an account named in a request
func (v *Verifier) Account(s string) (*account.Account, error) {
	acc, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, fault.ErrNoSuchAccount
	}
	if acc.IsTesting() != v.testing {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return acc, nil
}
