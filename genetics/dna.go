// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genetics

import (
	"encoding/hex"

	"github.com/bitmark-inc/creatured/fault"
)

// DNALength - number of bytes in a genetic code
const DNALength = 16

// DNA - the genetic code of a creature
// to convert to bytes just use d[:]
type DNA [DNALength]byte

// convert a binary DNA to hex string for use by the fmt package (for %s)
func (dna DNA) String() string {
	return hex.EncodeToString(dna[:])
}

// convert a binary DNA to hex string for use by the fmt package (for %#v)
func (dna DNA) GoString() string {
	return "<DNA:" + hex.EncodeToString(dna[:]) + ">"
}

// MarshalText - convert DNA to hex text
func (dna DNA) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DNALength))
	hex.Encode(buffer, dna[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into DNA
func (dna *DNA) UnmarshalText(s []byte) error {
	if DNALength != hex.DecodedLen(len(s)) {
		return fault.ErrDNALengthMismatch
	}
	_, err := hex.Decode(dna[:], s)
	return err
}

// DNAFromBytes - convert and validate a byte slice to DNA
func DNAFromBytes(dna *DNA, buffer []byte) error {
	if DNALength != len(buffer) {
		return fault.ErrDNALengthMismatch
	}
	copy(dna[:], buffer)
	return nil
}
