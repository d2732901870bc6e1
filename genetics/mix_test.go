// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genetics_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/genetics"
)

func fill(b byte) genetics.DNA {
	dna := genetics.DNA{}
	for i := range dna {
		dna[i] = b
	}
	return dna
}

func TestMixSelectorExtremes(t *testing.T) {
	p1 := genetics.DNA{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
	p2 := genetics.DNA{0xa5, 0x5a, 0xa5, 0x5a, 0xa5, 0x5a, 0xa5, 0x5a, 0xa5, 0x5a, 0xa5, 0x5a, 0xa5, 0x5a, 0xa5, 0x5a}

	assert.Equal(t, p1, genetics.Mix(p1, p2, fill(0xff)), "all ones selects parent 1")
	assert.Equal(t, p2, genetics.Mix(p1, p2, fill(0x00)), "all zeros selects parent 2")
}

func TestMixBits(t *testing.T) {
	tests := []struct {
		p1       byte
		p2       byte
		selector byte
		expected byte
	}{
		{0xff, 0x00, 0xf0, 0xf0},
		{0x00, 0xff, 0xf0, 0x0f},
		{0xaa, 0x55, 0x0f, 0x5a},
		{0x12, 0x34, 0x00, 0x34},
		{0x12, 0x34, 0xff, 0x12},
		{0xc3, 0x3c, 0x81, 0xbd},
	}

	for i, test := range tests {
		child := genetics.Mix(fill(test.p1), fill(test.p2), fill(test.selector))
		assert.Equal(t, fill(test.expected), child, "%d: mixed child", i)
	}
}

// every child bit must equal one of the parent bits at that position
func TestMixBitsFromParents(t *testing.T) {
	p1 := genetics.DNA{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80, 0x90, 0xa0, 0xb0, 0xc0, 0xd0, 0xe0, 0xf0, 0x00}
	p2 := genetics.DNA{0x0f, 0x0e, 0x0d, 0x0c, 0x0b, 0x0a, 0x09, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, 0xff}
	s := genetics.DNA{0x5c, 0x81, 0x7e, 0x00, 0xff, 0x33, 0xcc, 0x0f, 0xf0, 0x99, 0x66, 0x12, 0x34, 0x56, 0x78, 0x9a}

	child := genetics.Mix(p1, p2, s)
	for i := range child {
		for bit := uint(0); bit < 8; bit += 1 {
			mask := byte(1) << bit
			if 0 != s[i]&mask {
				assert.Equal(t, p1[i]&mask, child[i]&mask, "byte %d bit %d from parent 1", i, bit)
			} else {
				assert.Equal(t, p2[i]&mask, child[i]&mask, "byte %d bit %d from parent 2", i, bit)
			}
		}
	}
}

func TestMixBytes(t *testing.T) {
	child, err := genetics.MixBytes([]byte{0xff, 0x00}, []byte{0x00, 0xff}, []byte{0x0f, 0x0f})
	assert.Nil(t, err, "mix")
	assert.Equal(t, []byte{0x0f, 0xf0}, child, "child")

	_, err = genetics.MixBytes([]byte{0x01}, []byte{0x01, 0x02}, []byte{0x01})
	assert.Equal(t, fault.ErrDNALengthMismatch, err, "parent length")

	_, err = genetics.MixBytes([]byte{0x01}, []byte{0x02}, []byte{})
	assert.Equal(t, fault.ErrDNALengthMismatch, err, "selector length")
}

func TestDNAText(t *testing.T) {
	dna := genetics.DNA{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}

	assert.Equal(t, "000102030405060708090a0b0c0d0e0f", dna.String(), "string")

	buffer, err := json.Marshal(dna)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `"000102030405060708090a0b0c0d0e0f"`, string(buffer), "json")

	var back genetics.DNA
	err = json.Unmarshal(buffer, &back)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, dna, back, "round trip")

	err = back.UnmarshalText([]byte("0102"))
	assert.Equal(t, fault.ErrDNALengthMismatch, err, "short text")

	err = genetics.DNAFromBytes(&back, []byte{1, 2, 3})
	assert.Equal(t, fault.ErrDNALengthMismatch, err, "short bytes")
}

func TestMixAgreesWithMixBytes(t *testing.T) {
	p1 := genetics.DNA{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
	p2 := fill(0x5a)
	selector := genetics.DNA{0xf0, 0x0f, 0xff, 0x00, 0xaa, 0x55, 0x3c, 0xc3, 0x01, 0x80, 0x7e, 0xe7, 0x11, 0x22, 0x44, 0x88}

	mixed, err := genetics.MixBytes(p1[:], p2[:], selector[:])
	assert.Nil(t, err, "mix bytes")

	var expected genetics.DNA
	err = genetics.DNAFromBytes(&expected, mixed)
	assert.Nil(t, err, "from bytes")
	assert.Equal(t, expected, genetics.Mix(p1, p2, selector), "same child")
}
