// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"math"

	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
)

var counterKey = []byte("creature")

// hands out creature indexes: 1, 2, 3, ...
//
// the stored counter is the last index issued, zero before the first
type allocator struct {
	pool *storage.PoolHandle
}

func (a allocator) current(trx storage.Transaction) uint64 {
	n, _ := trx.GetN(a.pool, counterKey)
	return n
}

// the index the next call to next will return, without staging anything
func (a allocator) peek(trx storage.Transaction) (uint64, error) {
	c := a.current(trx)
	if math.MaxUint64 == c {
		return 0, fault.ErrIndexOverflow
	}
	return c + 1, nil
}

func (a allocator) next(trx storage.Transaction) (uint64, error) {
	index, err := a.peek(trx)
	if nil != err {
		return 0, err
	}
	trx.PutN(a.pool, counterKey, index)
	return index, nil
}

func (a allocator) committed() uint64 {
	n, _ := a.pool.GetN(counterKey)
	return n
}
