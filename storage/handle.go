// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - a prefixed key range of the database
//
// the exported read methods see committed data only; staged data is
// visible through a Transaction
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess *AccessData
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a committed value for a given key
//
// second parameter is false if record was not found
func (p *PoolHandle) Get(key []byte) ([]byte, bool) {
	value, err := p.dataAccess.getCommitted(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil, false
	}
	logger.PanicIfError("pool.Get", err)
	return value, true
}

// GetN - read a committed record and decode as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer, found := p.Get(key)
	return decodeN(key, buffer, found)
}

// Has - check if a key has been committed
func (p *PoolHandle) Has(key []byte) bool {
	value, err := p.dataAccess.hasCommitted(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return value
}

// staged accessors used by the transaction

func (p *PoolHandle) put(key []byte, value []byte) {
	p.dataAccess.Put(p.prefixKey(key), value)
}

func (p *PoolHandle) putN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.dataAccess.Put(p.prefixKey(key), buffer)
}

func (p *PoolHandle) remove(key []byte) {
	p.dataAccess.Delete(p.prefixKey(key))
}

func (p *PoolHandle) get(key []byte) ([]byte, bool) {
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil, false
	}
	logger.PanicIfError("pool.get", err)
	return value, true
}

func (p *PoolHandle) getN(key []byte) (uint64, bool) {
	buffer, found := p.get(key)
	return decodeN(key, buffer, found)
}

func (p *PoolHandle) has(key []byte) bool {
	value, err := p.dataAccess.Has(p.prefixKey(key))
	logger.PanicIfError("pool.has", err)
	return value
}

// panics if not 8 bytes in the record
func decodeN(key []byte, buffer []byte, found bool) (uint64, bool) {
	if !found {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer), true
}
