// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"encoding/binary"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

// SeedLength - bytes in a block seed
const SeedLength = 32

// keys in the blocks pool
var (
	numberKey = []byte("number")
	seedKey   = []byte("seed")
)

// Chain - the current block context
//
// a block groups the operations executed between two Advance calls;
// each operation inside a block gets its own sequence number
type Chain struct {
	sync.RWMutex

	log *logger.L

	store    *storage.Store
	pool     *storage.PoolHandle
	interval time.Duration

	number   uint64
	seed     [SeedLength]byte
	sequence uint64
}

// New - restore the chain from storage or start from the genesis seed
//
// a restart always opens a new block so no sequence number is reused
func New(log *logger.L, store *storage.Store, genesisSeed [SeedLength]byte, interval time.Duration) (*Chain, error) {
	if nil == store {
		return nil, fault.ErrNotInitialised
	}

	c := &Chain{
		log:      log,
		store:    store,
		pool:     store.Pool.Blocks,
		interval: interval,
		seed:     genesisSeed,
	}

	if n, found := c.pool.GetN(numberKey); found {
		seed, ok := c.pool.Get(seedKey)
		if !ok || SeedLength != len(seed) {
			log.Criticalf("block seed missing or corrupt for block: %d", n)
			return nil, fault.ErrCorruptRecord
		}
		c.number = n
		copy(c.seed[:], seed)
	}

	err := c.Advance()
	if nil != err {
		return nil, err
	}
	return c, nil
}

// Number - current block number
func (c *Chain) Number() uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.number
}

// Seed - copy of the current block seed
func (c *Chain) Seed() []byte {
	c.RLock()
	defer c.RUnlock()
	seed := make([]byte, SeedLength)
	copy(seed, c.seed[:])
	return seed
}

// NextSequence - operation number within the current block, starting at 1
func (c *Chain) NextSequence() uint64 {
	c.Lock()
	defer c.Unlock()
	c.sequence += 1
	return c.sequence
}

// Advance - close the current block and open the next
//
// seed' = SHA3-256(seed ++ be64(number+1))
func (c *Chain) Advance() error {
	trx, err := c.store.Begin()
	if nil != err {
		return err
	}

	c.Lock()
	defer c.Unlock()

	number := c.number + 1
	seed := nextSeed(c.seed, number)

	trx.PutN(c.pool, numberKey, number)
	trx.Put(c.pool, seedKey, seed[:])
	err = trx.Commit()
	if nil != err {
		c.log.Errorf("advance to block: %d  error: %s", number, err)
		return err
	}

	c.number = number
	c.seed = seed
	c.sequence = 0

	c.log.Debugf("block: %d  seed: %x", number, seed)
	return nil
}

func nextSeed(seed [SeedLength]byte, number uint64) [SeedLength]byte {
	buffer := make([]byte, SeedLength+8)
	copy(buffer, seed[:])
	binary.BigEndian.PutUint64(buffer[SeedLength:], number)
	return sha3.Sum256(buffer)
}

// Run - background process advancing the block every interval
func (c *Chain) Run(args interface{}, shutdown <-chan struct{}) {
	log := c.log
	log.Infof("starting…  interval: %s", c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			err := c.Advance()
			if nil != err {
				log.Errorf("advance error: %s", err)
			}
		}
	}
	log.Info("shutting down…")
}
