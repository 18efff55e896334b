// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint

import (
	"sync"
)

// one way cancellation flag shared by all handles of a miner
type interruptFlag struct {
	sync.RWMutex
	set  bool
	done chan struct{} // closed on interrupt
}

func newInterruptFlag() *interruptFlag {
	return &interruptFlag{
		done: make(chan struct{}),
	}
}

// returns true only for the call that changed the state
func (f *interruptFlag) interrupt() bool {
	f.Lock()
	defer f.Unlock()

	if f.set {
		return false
	}
	f.set = true
	close(f.done)
	return true
}

func (f *interruptFlag) isSet() bool {
	f.RLock()
	defer f.RUnlock()
	return f.set
}

func (f *interruptFlag) wait() <-chan struct{} {
	return f.done
}
