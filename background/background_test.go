// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/background"
)

type ticker struct {
	ticks    uint64
	finished bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			atomic.AddUint64(&state.ticks, 1)
		}
	}
	state.finished = true
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.True(t, proc1.finished, "process 1 did not finish")
	assert.True(t, proc2.finished, "process 2 did not finish")
	assert.NotZero(t, atomic.LoadUint64(&proc1.ticks), "process 1 did not run")
	assert.NotZero(t, atomic.LoadUint64(&proc2.ticks), "process 2 did not run")

	// must be safe to repeat
	p.Stop()
}
