// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/mintd/background"
)

type bg1 struct {
	count int
}

const (
	initialCount1 = 246
	finalCount1   = 987654321
	initialCount2 = 777
	finalCount2   = 897645312
)

func TestBackground(t *testing.T) {

	proc1 := &bg1{
		count: initialCount1,
	}
	proc2 := &bg1{
		count: initialCount2,
	}

	// list of background processes to start
	var processes = background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	if finalCount1 != proc1.count {
		t.Fatalf("stop failed: final value expected: %d  actual: %d", finalCount1, proc1.count)
	}
	if finalCount2 != proc2.count {
		t.Fatalf("stop failed: final value expected: %d  actual: %d", finalCount2, proc2.count)
	}

	// second stop must not block or panic
	p.Stop()
}

func (state *bg1) Run(args interface{}, shutdown <-chan struct{}) {

	t := args.(*testing.T)

	n := 0
	if initialCount1 == state.count {
		n = 1
	} else if initialCount2 == state.count {
		n = 2
	} else {
		t.Errorf("initialisation failed: unexpected initial count: %d", state.count)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.count += 9
		time.Sleep(time.Millisecond)
	}

	// test for the stop operation
	switch n {
	case 1:
		state.count = finalCount1
	case 2:
		state.count = finalCount2
	default:
		t.Errorf("unexpected n: %d", n)
	}
}

// a process that finishes on its own, without waiting for shutdown
type oneShot struct {
	ran      chan interface{}
	shutdown bool
}

func (o *oneShot) Run(args interface{}, shutdown <-chan struct{}) {
	select {
	case <-shutdown:
		o.shutdown = true
	default:
	}
	o.ran <- args
}

// runs until shutdown
type waiter struct {
	stopped bool
}

func (w *waiter) Run(args interface{}, shutdown <-chan struct{}) {
	<-shutdown
	w.stopped = true
}

func TestProcessReturnsBeforeStop(t *testing.T) {
	early := &oneShot{
		ran: make(chan interface{}, 1),
	}
	late := &waiter{}

	args := "arguments"
	p := background.Start(background.Processes{early, late}, args)

	select {
	case a := <-early.ran:
		if args != a {
			t.Errorf("wrong args: expected: %q  actual: %v", args, a)
		}
	case <-time.After(time.Second):
		t.Fatalf("one shot process did not run")
	}

	if early.shutdown {
		t.Errorf("shutdown seen before Stop")
	}

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Stop blocked on a finished process")
	}

	if !late.stopped {
		t.Errorf("waiting process not stopped")
	}
}

func TestStartEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
	p.Stop()
}
