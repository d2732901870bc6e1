// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Creatures        *PoolHandle `prefix:"K"`
	Owners           *PoolHandle `prefix:"O"`
	Counters         *PoolHandle `prefix:"N"`
	FreeBalances     *PoolHandle `prefix:"B"`
	ReservedBalances *PoolHandle `prefix:"R"`
	Accounts         *PoolHandle `prefix:"A"`
	Proofs           *PoolHandle `prefix:"P"`
	Blocks           *PoolHandle `prefix:"H"`
	TestData         *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database with its pools
type Store struct {
	sync.Mutex
	db     *leveldb.DB
	access *AccessData
	trx    *TransactionData
	Pool   Pools
}

// Open - open up the database file
func Open(database string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}
	return newStore(db, readOnly)
}

// NewMemory - a database held entirely in memory
func NewMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return newStore(db, ReadWrite)
}

func newStore(db *leveldb.DB, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	store := &Store{
		db: db,
	}
	store.access = newDA(db, new(leveldb.Batch), newCache())
	store.trx = newTransaction(store.access)

	err = store.setupPools()
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return store, nil
}

// scan the pool struct tags and create a handle for each field
func (store *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(store.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&store.Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: store.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (store *Store) Close() {
	store.Lock()
	defer store.Unlock()

	if nil != store.db {
		store.db.Close()
		store.db = nil
	}
}

// Begin - start a transaction
//
// blocks until any other transaction has finished; the caller must
// finish with exactly one of Commit or Abort
func (store *Store) Begin() (Transaction, error) {
	err := store.trx.Begin()
	if nil != err {
		return nil, err
	}
	return store.trx, nil
}

// Dump - every committed key/value pair in key order, version key included
func (store *Store) Dump() ([]Element, error) {
	iter := store.db.NewIterator(nil, nil)
	results := make([]Element, 0, 64)
	for iter.Next() {
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())
		results = append(results, Element{Key: key, Value: value})
	}
	iter.Release()
	return results, iter.Error()
}

// return the version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
