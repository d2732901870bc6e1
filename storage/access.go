// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/creatured/fault"
)

// Access - for Database
type Access interface {
	Abort() error
	Begin() error
	Commit() error
	Delete([]byte)
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - a leveldb batch with a read-your-writes overlay
type AccessData struct {
	sync.Mutex
	writer sync.Mutex // held from Begin to Commit/Abort
	inUse  bool
	db     *leveldb.DB
	batch  *leveldb.Batch
	cache  Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) *AccessData {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Begin - wait for exclusive use of the batch
func (d *AccessData) Begin() error {
	d.writer.Lock()

	d.Lock()
	defer d.Unlock()

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the whole batch atomically
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrTransactionNotInUse
	}

	err := d.db.Write(d.batch, nil)
	d.finish()
	return err
}

// Abort - discard all staged writes
func (d *AccessData) Abort() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrTransactionNotInUse
	}

	d.finish()
	return nil
}

// must hold lock
func (d *AccessData) finish() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	d.writer.Unlock()
}

func (d *AccessData) DumpTx() []byte {
	return d.batch.Dump()
}

// Get - staged value if any, else the committed value
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return val, nil
	}
	return d.db.Get(key, nil)
}

// read committed data, ignoring anything staged
func (d *AccessData) getCommitted(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *AccessData) hasCommitted(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	_, op, found := d.cache.Get(string(key))
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

// Iterator - over committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
