// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"golang.org/x/crypto/sha3"
)

// names of all chains
const (
	Creature = "creature"
	Testing  = "testing"
	Local    = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Creature, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true if accounts on this chain carry the test flag
func IsTesting(name string) bool {
	return Creature != name
}

// GenesisSeed - block seed used when none is configured
func GenesisSeed(name string) [32]byte {
	return sha3.Sum256([]byte("creatured genesis: " + name))
}
