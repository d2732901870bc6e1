// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genetics

import (
	"github.com/bitmark-inc/creatured/fault"
)

// Mix - combine two parents under a selector
//
// each bit of the child comes from parent1 where the selector bit is
// set and from parent2 where it is clear
func Mix(parent1 DNA, parent2 DNA, selector DNA) DNA {
	mixed, err := MixBytes(parent1[:], parent2[:], selector[:])
	if nil != err {
		// equal array lengths
		panic(err)
	}
	child := DNA{}
	if err := DNAFromBytes(&child, mixed); nil != err {
		panic(err)
	}
	return child
}

// MixBytes - the variable length form of Mix
//
// all three slices must be the same length
func MixBytes(parent1 []byte, parent2 []byte, selector []byte) ([]byte, error) {
	if len(parent1) != len(parent2) || len(parent1) != len(selector) {
		return nil, fault.ErrDNALengthMismatch
	}

	child := make([]byte, len(parent1))
	for i := range child {
		child[i] = mixByte(parent1[i], parent2[i], selector[i])
	}
	return child, nil
}

func mixByte(b1 byte, b2 byte, selector byte) byte {
	return (selector & b1) | (^selector & b2)
}
