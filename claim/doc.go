// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package claim - proof of existence registry
//
// a proof is an arbitrary byte string of bounded length; the first
// account to claim it owns it until it revokes or transfers the claim.
// Each record also holds the block number of its last change.
package claim
