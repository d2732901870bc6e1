// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through the single Transaction of a Store: they are
// staged in a LevelDB batch, visible to later reads of the same
// transaction, and written together by Commit.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. index        = creature index as big endian uint64 (8 bytes)
// 4. count        = big endian uint64 (8 bytes)
// 5. account      = account bytes (key variant ++ 32 byte public key)
// 6. *others*     = byte values of various length
//
// Creatures:
//
//   K ++ index                 - creature record
//                                data: varint(index) ++ dna[16] ++ varint(price) ++ flags ++ varint(len) ++ creator account
//                                flags: 0x01 for sale, 0x02 creator reservation released
//   O ++ index                 - current owner
//                                data: account
//   N ++ "creature"            - last issued creature index
//                                data: count
//   N ++ "genesis"             - genesis balances applied
//                                data: count of allocations
//
// Balances:
//
//   A ++ account               - known account
//                                data: 0x01
//   B ++ account               - free balance
//                                data: count
//   R ++ account               - reserved balance
//                                data: count
//
// Claims:
//
//   P ++ proof                 - claimed proof
//                                data: account ++ block number(count)
//
// Blocks:
//
//   H ++ "number"              - current block number
//                                data: count
//   H ++ "seed"                - current block seed
//                                data: 32 byte seed
//
// Testing:
//   Z ++ key                   - testing data
package storage
