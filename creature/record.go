// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/genetics"
	"github.com/bitmark-inc/creatured/util"
)

// Creature - the stored record of one creature
//
// Index, DNA and Creator never change after creation
type Creature struct {
	Index   uint64           `json:"index"`
	DNA     genetics.DNA     `json:"dna"`
	Price   uint64           `json:"price"`
	ForSale bool             `json:"forSale"`
	Creator *account.Account `json:"creator"`

	// set once the creator's reservation has been returned
	Released bool `json:"released"`
}

// bits of the flag byte
const (
	forSaleFlag  = 0x01
	releasedFlag = 0x02
	knownFlags   = forSaleFlag | releasedFlag
)

// Pack - binary form of the record
//
// varint(index) ++ dna ++ varint(price) ++ flags ++ varint(len(creator)) ++ creator
func (c *Creature) Pack() []byte {
	buffer := util.ToVarint64(c.Index)
	buffer = append(buffer, c.DNA[:]...)
	buffer = append(buffer, util.ToVarint64(c.Price)...)
	flag := byte(0)
	if c.ForSale {
		flag |= forSaleFlag
	}
	if c.Released {
		flag |= releasedFlag
	}
	buffer = append(buffer, flag)
	return util.PackBytes(buffer, c.Creator.Bytes())
}

// Unpack - decode a packed record
//
// any malformed or trailing data is a corrupt record
func Unpack(buffer []byte) (*Creature, error) {
	c := &Creature{}

	index, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	c.Index = index
	buffer = buffer[n:]

	if len(buffer) < genetics.DNALength {
		return nil, fault.ErrCorruptRecord
	}
	if err := genetics.DNAFromBytes(&c.DNA, buffer[:genetics.DNALength]); nil != err {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[genetics.DNALength:]

	price, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	c.Price = price
	buffer = buffer[n:]

	if 0 == len(buffer) {
		return nil, fault.ErrCorruptRecord
	}
	flag := buffer[0]
	if 0 != flag&^knownFlags {
		return nil, fault.ErrCorruptRecord
	}
	c.ForSale = 0 != flag&forSaleFlag
	c.Released = 0 != flag&releasedFlag
	buffer = buffer[1:]

	creatorBytes, n := util.UnpackBytes(buffer)
	if 0 == n || n != len(buffer) {
		return nil, fault.ErrCorruptRecord
	}
	creator, err := account.AccountFromBytes(creatorBytes)
	if nil != err {
		return nil, fault.ErrCorruptRecord
	}
	c.Creator = creator

	return c, nil
}
