// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"encoding/binary"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
)

const blockNumberLength = 8

// Claim - owner of a proof and the block it was recorded in
type Claim struct {
	Owner       *account.Account `json:"owner"`
	BlockNumber uint64           `json:"blockNumber"`
}

// Pack - account bytes ++ be64(block number)
func (c *Claim) Pack() []byte {
	buffer := c.Owner.Bytes()
	n := make([]byte, blockNumberLength)
	binary.BigEndian.PutUint64(n, c.BlockNumber)
	return append(buffer, n...)
}

// Unpack - decode a stored claim
func Unpack(buffer []byte) (*Claim, error) {
	if len(buffer) <= blockNumberLength {
		return nil, fault.ErrCorruptRecord
	}
	split := len(buffer) - blockNumberLength

	owner, err := account.AccountFromBytes(buffer[:split])
	if nil != err {
		return nil, fault.ErrCorruptRecord
	}
	return &Claim{
		Owner:       owner,
		BlockNumber: binary.BigEndian.Uint64(buffer[split:]),
	}, nil
}
