// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint

import (
	"sync/atomic"
)

// Statistics - snapshot of the counts for a miner and its clones
type Statistics struct {
	Attempts  uint64 `json:"attempts"`
	Solved    uint64 `json:"solved"`
	Cancelled uint64 `json:"cancelled"`
}

type statistics struct {
	attempts  uint64
	solved    uint64
	cancelled uint64
}

func (s *statistics) attempt() {
	atomic.AddUint64(&s.attempts, 1)
}

func (s *statistics) solve() {
	atomic.AddUint64(&s.solved, 1)
}

func (s *statistics) cancel() {
	atomic.AddUint64(&s.cancelled, 1)
}

func (s *statistics) snapshot() Statistics {
	return Statistics{
		Attempts:  atomic.LoadUint64(&s.attempts),
		Solved:    atomic.LoadUint64(&s.solved),
		Cancelled: atomic.LoadUint64(&s.cancelled),
	}
}
