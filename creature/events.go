// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"github.com/bitmark-inc/creatured/util"
)

// event commands, parameters are account bytes and 8 byte big endian integers
const (
	EventCreated     = "created"     // owner, index
	EventTransferred = "transferred" // from, to, index
	EventBred        = "bred"        // owner, index
	EventListed      = "listed"      // index, price
	EventPurchased   = "purchased"   // index, buyer
)

func (r *Registry) notify(command string, parameters ...[]byte) {
	if nil == r.notifier {
		return
	}
	r.notifier.Send(command, parameters...)
}

func packN(value uint64) []byte {
	return util.Uint64ToBytes(value)
}
