// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block_test

import (
	"encoding/binary"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/creatured/background"
	"github.com/bitmark-inc/creatured/block"
	"github.com/bitmark-inc/creatured/storage"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func expectedSeed(seed []byte, number uint64) []byte {
	buffer := make([]byte, len(seed)+8)
	copy(buffer, seed)
	binary.BigEndian.PutUint64(buffer[len(seed):], number)
	s := sha3.Sum256(buffer)
	return s[:]
}

func TestNewOpensFirstBlock(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	store, _ := storage.NewMemory()
	defer store.Close()

	genesis := [block.SeedLength]byte{1, 2, 3}
	c, err := block.New(logger.New("testing"), store, genesis, time.Second)
	assert.Nil(t, err, "new")

	assert.Equal(t, uint64(1), c.Number(), "first block")
	assert.Equal(t, expectedSeed(genesis[:], 1), c.Seed(), "first seed")
}

func TestAdvance(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	store, _ := storage.NewMemory()
	defer store.Close()

	c, _ := block.New(logger.New("testing"), store, [block.SeedLength]byte{}, time.Second)

	assert.Equal(t, uint64(1), c.NextSequence(), "first sequence")
	assert.Equal(t, uint64(2), c.NextSequence(), "second sequence")

	seed := c.Seed()
	err := c.Advance()
	assert.Nil(t, err, "advance")
	assert.Equal(t, uint64(2), c.Number(), "next block")
	assert.Equal(t, expectedSeed(seed, 2), c.Seed(), "next seed")
	assert.Equal(t, uint64(1), c.NextSequence(), "sequence restarts")

	n, found := store.Pool.Blocks.GetN([]byte("number"))
	assert.True(t, found, "number stored")
	assert.Equal(t, uint64(2), n, "stored number")
}

func TestRestore(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	store, _ := storage.NewMemory()
	defer store.Close()

	c1, _ := block.New(logger.New("testing"), store, [block.SeedLength]byte{9}, time.Second)
	_ = c1.Advance()
	seed := c1.Seed()

	// a different genesis seed must be ignored once blocks exist
	c2, err := block.New(logger.New("testing"), store, [block.SeedLength]byte{7}, time.Second)
	assert.Nil(t, err, "restore")
	assert.Equal(t, uint64(3), c2.Number(), "restart opens a new block")
	assert.Equal(t, expectedSeed(seed, 3), c2.Seed(), "restored seed chain")
}

func TestBackgroundAdvance(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	store, _ := storage.NewMemory()
	defer store.Close()

	c, _ := block.New(logger.New("testing"), store, [block.SeedLength]byte{}, 5*time.Millisecond)

	p := background.Start(background.Processes{c}, nil)
	time.Sleep(60 * time.Millisecond)
	p.Stop()

	assert.True(t, c.Number() > 1, "background did not advance: %d", c.Number())
}
