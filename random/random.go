// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/creatured/genetics"
	"github.com/bitmark-inc/creatured/util"
)

// Context - the inputs that fix one random value
type Context struct {
	Seed     []byte // block seed
	Caller   []byte // account bytes of the signer
	Sequence uint64 // operation number within the block
}

// Blake2 - derives 16 bytes from the context with a keyless blake2b-128
//
// the same context always gives the same bytes
type Blake2 struct{}

// RandomBytes - blake2b-128(seed ++ varint(len(caller)) ++ caller ++ be64(sequence))
func (Blake2) RandomBytes(ctx Context) genetics.DNA {
	h, err := blake2b.New(genetics.DNALength, nil)
	if nil != err {
		// only possible for an invalid size
		panic(err)
	}

	h.Write(ctx.Seed)
	h.Write(util.ToVarint64(uint64(len(ctx.Caller))))
	h.Write(ctx.Caller)

	sequence := make([]byte, 8)
	binary.BigEndian.PutUint64(sequence, ctx.Sequence)
	h.Write(sequence)

	dna := genetics.DNA{}
	if err := genetics.DNAFromBytes(&dna, h.Sum(nil)); nil != err {
		panic(err)
	}
	return dna
}

// Fixed - hands out a fixed list of values in order, wrapping around
type Fixed struct {
	sync.Mutex
	values []genetics.DNA
	next   int
	calls  []Context
}

// NewFixed - replay source for tests and tools
func NewFixed(values ...genetics.DNA) *Fixed {
	if 0 == len(values) {
		values = []genetics.DNA{{}}
	}
	return &Fixed{
		values: values,
	}
}

// RandomBytes - next value of the list, the context is only recorded
func (f *Fixed) RandomBytes(ctx Context) genetics.DNA {
	f.Lock()
	defer f.Unlock()

	dna := f.values[f.next]
	f.next = (f.next + 1) % len(f.values)
	f.calls = append(f.calls, ctx)
	return dna
}

// Calls - contexts seen so far
func (f *Fixed) Calls() []Context {
	f.Lock()
	defer f.Unlock()

	result := make([]Context, len(f.calls))
	copy(result, f.calls)
	return result
}
