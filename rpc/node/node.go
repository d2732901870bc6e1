// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/creatured/counter"
	"github.com/bitmark-inc/creatured/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Blocks - the current block
type Blocks interface {
	Number() uint64
}

// Creatures - the last issued creature index
type Creatures interface {
	CurrentIndex() uint64
}

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Chain     string
	Version   string
	PublicKey []byte
	blocks    Blocks
	creatures Creatures
	counter   *counter.Counter
}

// New - create the node service
//
// publicKey is the event publisher's curve key, nil if not publishing
func New(log *logger.L, start time.Time, chain string, version string, publicKey []byte, counter *counter.Counter, blocks Blocks, creatures Creatures) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Chain:     chain,
		Version:   version,
		PublicKey: publicKey,
		blocks:    blocks,
		creatures: creatures,
		counter:   counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string    `json:"chain"`
	Block     BlockInfo `json:"block"`
	Creatures uint64    `json:"creatures,string"`
	RPCs      uint64    `json:"rpcs"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	PublicKey string    `json:"publicKey"`
}

// BlockInfo - the block currently open
type BlockInfo struct {
	Number uint64 `json:"number,string"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Block = BlockInfo{
		Number: node.blocks.Number(),
	}
	reply.Creatures = node.creatures.CurrentIndex()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	if nil != node.PublicKey {
		reply.PublicKey = hex.EncodeToString(node.PublicKey)
	}
	return nil
}
