// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/mintd/digest"
	"github.com/bitmark-inc/mintd/fault"
)

const (
	loggerPrefix = "mint"

	// minimum interval between progress lines from a running search
	progressInterval = time.Second
)

// Miner - searches for a nonce meeting a fixed target
//
// copies made by Clone share the interrupt flag and statistics
type Miner struct {
	target    uint
	delay     time.Duration
	algorithm *digest.Algorithm
	log       *logger.L

	flag     *interruptFlag
	stats    *statistics
	progress *rate.Limiter
}

// New - create a miner from a configuration block
func New(configuration *Configuration, log *logger.L) (*Miner, error) {
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	s, err := configuration.settings()
	if nil != err {
		return nil, err
	}
	return NewMiner(s.target, s.delay, s.algorithm, log), nil
}

// NewMiner - create a miner
//
// a target beyond the digest length is accepted but can never be met,
// a nil log is replaced by a "mint" channel
func NewMiner(target uint, delay time.Duration, algorithm *digest.Algorithm, log *logger.L) *Miner {
	if nil == log {
		log = logger.New(loggerPrefix)
	}
	if nil == algorithm {
		algorithm = digest.Default
	}
	if delay < 0 {
		delay = 0
	}
	if target > uint(algorithm.Bits()) {
		log.Warnf("target: %d exceeds %s digest bits: %d, no nonce can succeed", target, algorithm, algorithm.Bits())
	}
	return &Miner{
		target:    target,
		delay:     delay,
		algorithm: algorithm,
		log:       log,
		flag:      newInterruptFlag(),
		stats:     &statistics{},
		progress:  rate.NewLimiter(rate.Every(progressInterval), 1),
	}
}

// Clone - another handle on the same miner
func (m *Miner) Clone() *Miner {
	c := *m
	return &c
}

// Target - required leading zero bits
func (m *Miner) Target() uint {
	return m.target
}

// Delay - wait between unsuccessful attempts
func (m *Miner) Delay() time.Duration {
	return m.delay
}

// Algorithm - the digest in use
func (m *Miner) Algorithm() *digest.Algorithm {
	return m.algorithm
}

// Statistics - counts shared by all handles
func (m *Miner) Statistics() Statistics {
	return m.stats.snapshot()
}

// Check - true if nonce meets this miner's target for the fingerprint
func (m *Miner) Check(fingerprint []byte, nonce uint64) bool {
	return CheckNonce(m.algorithm, fingerprint, nonce, m.target)
}

// Interrupt - stop any search on this miner or its clones
//
// there is no reset, further calls have no effect
func (m *Miner) Interrupt() {
	if m.flag.interrupt() {
		m.log.Info("interrupted")
	}
}

// Interrupted - true once Interrupt has been called on any handle
func (m *Miner) Interrupted() bool {
	return m.flag.isSet()
}

// Search - sample random nonces until one meets the target
//
// returns false only if the miner was interrupted
func (m *Miner) Search(fingerprint []byte) (uint64, bool) {
	return m.SearchContext(context.Background(), fingerprint)
}

// SearchContext - as Search but also gives up when ctx is done
//
// ctx only ends this call, it does not interrupt the miner
func (m *Miner) SearchContext(ctx context.Context, fingerprint []byte) (uint64, bool) {
	log := m.log

	log.Debugf("search: fingerprint: %x  target: %d  delay: %s  digest: %s", fingerprint, m.target, m.delay, m.algorithm)

	start := time.Now()
	count := uint64(0)
	defer func() {
		if elapsed := time.Since(start).Seconds(); elapsed > 0 {
			log.Infof("hash rate: %f H/s  attempts: %d", float64(count)/elapsed, count)
		}
	}()

	var timer *time.Timer
	defer func() {
		if nil != timer {
			timer.Stop()
		}
	}()

	for {
		if m.flag.isSet() {
			m.stats.cancel()
			log.Info("search cancelled")
			return 0, false
		}
		select {
		case <-ctx.Done():
			m.stats.cancel()
			log.Infof("search abandoned: %s", ctx.Err())
			return 0, false
		default:
		}

		nonce := randomNonce()
		count += 1
		m.stats.attempt()

		if m.Check(fingerprint, nonce) {
			m.stats.solve()
			log.Infof("nonce: 0x%016x  after: %d attempts", nonce, count)
			return nonce, true
		}

		if m.progress.Allow() {
			log.Debugf("attempts: %d  last nonce: 0x%016x", count, nonce)
		}

		if 0 == m.delay {
			continue
		}

		if nil == timer {
			timer = time.NewTimer(m.delay)
		} else {
			timer.Reset(m.delay)
		}
		select {
		case <-timer.C:
		case <-m.flag.wait():
			stopTimer(timer)
		case <-ctx.Done():
			stopTimer(timer)
		}
	}
}

// uniform over the whole uint64 range
func randomNonce() uint64 {
	buffer := make([]byte, NonceSize)
	_, err := rand.Read(buffer)
	fault.PanicIfError("mint.randomNonce", err)
	return binary.BigEndian.Uint64(buffer)
}

// stop and drain so Reset is safe
func stopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
