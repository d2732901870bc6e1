// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - staged writes across all pools, applied together by
// Commit or discarded by Abort
type Transaction interface {
	Abort() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, bool)
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

// TransactionData - the single transaction of a store
type TransactionData struct {
	access Access
}

func newTransaction(access Access) *TransactionData {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *TransactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *TransactionData) Get(handle *PoolHandle, key []byte) ([]byte, bool) {
	return handle.get(key)
}

func (t *TransactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.getN(key)
}

func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.has(key)
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) Abort() error {
	return t.access.Abort()
}
