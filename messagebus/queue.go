// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
	"sync/atomic"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command with its packed parameters
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// Queue - a single consumer queue
type Queue struct {
	c chan Message
}

// BroadcastQueue - every listener receives every message sent after
// it started listening
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
	dropped   uint64
}

// Bus - the set of queues
var Bus = struct {
	Broadcast *BroadcastQueue
	TestQueue *Queue
}{
	Broadcast: NewBroadcast(),
	TestQueue: NewQueue(queueSize),
}

// NewQueue - a queue holding up to size messages
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = queueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, blocks if the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// NewBroadcast - a broadcast queue with no listeners
func NewBroadcast() *BroadcastQueue {
	return &BroadcastQueue{}
}

// Send - deliver a message to all current listeners
//
// never blocks: a listener whose buffer is full misses the message
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
			atomic.AddUint64(&queue.dropped, 1)
		}
	}
}

// Chan - register a new listener with its own buffer
//
// size <= 0 selects the default buffer size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = queueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - close and remove all listeners
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, listener := range queue.listeners {
		close(listener)
	}
	queue.listeners = nil
}

// Dropped - count of undelivered messages
func (queue *BroadcastQueue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}
