// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"testing"
)

func TestWriteThenRead(t *testing.T) {
	cache := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	actual, _, found := cache.Get(key)
	if found {
		t.Errorf("error key %s already exist value %v\n", key, actual)
	}

	cache.Set(dbPut, key, expected)
	actual, op, found := cache.Get(key)
	if !found || dbPut != op || !bytes.Equal(actual, expected) {
		t.Errorf("error set key %s, expect %v but get %v\n", key, expected, actual)
	}
}

func TestClear(t *testing.T) {
	cache := newCache()

	key := "test"
	data := []byte{'a', 'b', 'c', 'd'}

	cache.Set(dbPut, key, data)
	cache.Clear()

	_, _, found := cache.Get(key)
	if found {
		t.Errorf("error Clear not working, expect cache is empty but not")
	}
}

func TestReadDeleteOperation(t *testing.T) {
	cache := newCache()

	key := "test"
	data := []byte{'a', 'b', 'c', 'd'}

	cache.Set(dbPut, key, data)
	cache.Set(dbDelete, key, nil)

	value, op, found := cache.Get(key)
	if !found || dbDelete != op {
		t.Errorf("delete operation should be recorded")
	}
	if nil != value {
		t.Errorf("delete operation should get no value, actual: %v", value)
	}
}
