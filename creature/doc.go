// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package creature - the registry and marketplace of creatures
//
// A creature is created with random DNA or bred from two existing
// creatures. Its creator pays a fixed reservation which is returned
// the first time the creature leaves the creator's hands, by transfer
// or by sale. A listed creature can be bought by anyone with enough
// free balance; the price goes to the current owner.
//
// A transfer does not withdraw a listing: the receiver owns a creature
// that is still for sale at the previous owner's price until they
// re-price it with Sell.
//
// Every operation validates before it writes and runs in a single
// storage transaction, so a failed operation leaves the creature
// records, owners, counter and balances unchanged.
package creature
