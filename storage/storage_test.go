// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
)

func TestReadYourWrites(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	pool := store.Pool.TestData

	trx, err := store.Begin()
	assert.Nil(t, err, "begin")
	assert.True(t, trx.InUse(), "in use after begin")

	trx.Put(pool, []byte("key-one"), []byte("data-one"))
	trx.PutN(pool, []byte("count"), 42)

	value, found := trx.Get(pool, []byte("key-one"))
	assert.True(t, found, "staged value visible to transaction")
	assert.Equal(t, []byte("data-one"), value, "staged value")

	n, found := trx.GetN(pool, []byte("count"))
	assert.True(t, found, "staged count")
	assert.Equal(t, uint64(42), n, "staged count value")

	_, found = pool.Get([]byte("key-one"))
	assert.False(t, found, "staged value must not be committed yet")

	err = trx.Commit()
	assert.Nil(t, err, "commit")
	assert.False(t, trx.InUse(), "not in use after commit")

	value, found = pool.Get([]byte("key-one"))
	assert.True(t, found, "committed value")
	assert.Equal(t, []byte("data-one"), value, "committed value")

	n, found = pool.GetN([]byte("count"))
	assert.True(t, found, "committed count")
	assert.Equal(t, uint64(42), n, "committed count value")

	assert.False(t, pool.Has(nonExistantKey), "missing key")
	_, found = pool.Get(nonExistantKey)
	assert.False(t, found, "missing key")
}

func TestAbortDiscards(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	pool := store.Pool.TestData

	before, err := store.Dump()
	assert.Nil(t, err, "dump")

	trx, _ := store.Begin()
	trx.Put(pool, []byte("key-two"), []byte("data-two"))
	trx.Put(store.Pool.Creatures, []byte("key-two"), []byte("other"))
	err = trx.Abort()
	assert.Nil(t, err, "abort")

	after, err := store.Dump()
	assert.Nil(t, err, "dump")
	assert.Equal(t, before, after, "abort must leave database unchanged")

	// the next transaction must not see the aborted data
	trx, _ = store.Begin()
	assert.False(t, trx.Has(pool, []byte("key-two")), "aborted write visible")
	_ = trx.Abort()
}

func TestDeleteHidesCommitted(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	pool := store.Pool.TestData
	key := []byte("key-three")

	trx, _ := store.Begin()
	trx.Put(pool, key, []byte("data-three"))
	_ = trx.Commit()

	trx, _ = store.Begin()
	trx.Delete(pool, key)
	assert.False(t, trx.Has(pool, key), "staged delete must hide key")
	_, found := trx.Get(pool, key)
	assert.False(t, found, "staged delete must hide value")
	assert.True(t, pool.Has(key), "still committed")
	_ = trx.Commit()

	assert.False(t, pool.Has(key), "deleted after commit")
}

func TestFinishWithoutBegin(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	trx, _ := store.Begin()
	err := trx.Commit()
	assert.Nil(t, err, "first commit")

	err = trx.Commit()
	assert.Equal(t, fault.ErrTransactionNotInUse, err, "second commit")

	err = trx.Abort()
	assert.Equal(t, fault.ErrTransactionNotInUse, err, "abort after commit")
}

func TestPoolsAreSeparate(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	key := []byte{0, 0, 0, 0, 0, 0, 0, 1}

	trx, _ := store.Begin()
	trx.Put(store.Pool.Creatures, key, []byte("creature"))
	trx.Put(store.Pool.Owners, key, []byte("owner"))
	_ = trx.Commit()

	c, _ := store.Pool.Creatures.Get(key)
	o, _ := store.Pool.Owners.Get(key)
	assert.Equal(t, []byte("creature"), c, "creature pool")
	assert.Equal(t, []byte("owner"), o, "owner pool")
	assert.False(t, store.Pool.Proofs.Has(key), "proof pool")
}

func TestReopenFile(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	store, err := storage.Open(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "open")

	trx, _ := store.Begin()
	trx.PutN(store.Pool.Counters, []byte("creature"), 7)
	_ = trx.Commit()
	store.Close()

	store, err = storage.Open(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "reopen")
	defer store.Close()

	n, found := store.Pool.Counters.GetN([]byte("creature"))
	assert.True(t, found, "counter persisted")
	assert.Equal(t, uint64(7), n, "counter value")
}

func TestCursor(t *testing.T) {
	store := setup(t)
	defer teardown(store)

	pool := store.Pool.TestData

	trx, _ := store.Begin()
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		trx.Put(pool, []byte(k), []byte("value-"+k))
	}
	_ = trx.Commit()

	cursor := pool.NewFetchCursor()
	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 3, len(first), "first page")
	assert.Equal(t, []byte("a"), first[0].Key, "first key")

	second, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(second), "second page")
	assert.Equal(t, []byte("d"), second[0].Key, "resume key")

	third, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 0, len(third), "exhausted")

	fromSeek, err := pool.NewFetchCursor().Seek([]byte("c")).Fetch(10)
	assert.Nil(t, err, "fetch from seek")
	assert.Equal(t, 3, len(fromSeek), "from seek")
	assert.Equal(t, []byte("value-c"), fromSeek[0].Value, "seek value")

	// staged writes are not visible
	trx, _ = store.Begin()
	trx.Put(pool, []byte("f"), []byte("staged"))
	staged, err := pool.NewFetchCursor().Seek([]byte("e")).Fetch(10)
	assert.Nil(t, err, "fetch staged")
	assert.Equal(t, 1, len(staged), "committed only")
	_ = trx.Abort()

	var nilCursor *storage.FetchCursor
	_, err = nilCursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}
