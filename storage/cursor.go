// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/creatured/fault"
)

// FetchCursor - pages through the committed records of one pool in
// key order
type FetchCursor struct {
	pool  *PoolHandle
	start []byte // prefixed key where the next page begins
}

// NewFetchCursor - a cursor at the first key of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:  p,
		start: []byte{p.prefix},
	}
}

// Seek - the next page begins at key or the first key after it
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - up to count elements, the cursor then moves past the last one
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	iter := cursor.pool.dataAccess.Iterator(&util.Range{
		Start: cursor.start,
		Limit: cursor.pool.limit,
	})
	defer iter.Release()

	results := make([]Element, 0, count)
	for len(results) < count && iter.Next() {
		// iterator slices are reused by Next
		results = append(results, Element{
			Key:   clone(iter.Key()[1:]),
			Value: clone(iter.Value()),
		})
	}
	if err := iter.Error(); nil != err {
		return nil, err
	}

	if n := len(results); n > 0 {
		cursor.start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, nil
}

func clone(buffer []byte) []byte {
	c := make([]byte, len(buffer))
	copy(c, buffer)
	return c
}
