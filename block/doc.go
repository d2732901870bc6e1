// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package block - block number, seed and operation sequence
//
// the seed of each block is the hash of the previous seed and the new
// block number, so it cannot be chosen by a caller but every node
// computes the same value
package block
