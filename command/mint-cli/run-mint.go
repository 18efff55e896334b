// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/mint"
	"github.com/bitmark-inc/mintd/storage"
)

func runMint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	fingerprint, err := decodeFingerprint(c.String("fingerprint"))
	if nil != err {
		return err
	}

	timeout := c.Duration("timeout")
	if timeout < 0 {
		return ErrNegativeTimeout
	}

	configuration := mint.Configuration{
		Target: int(m.target),
		Delay:  c.String("delay"),
		Digest: m.algorithm.Name,
	}
	miner, err := mint.New(&configuration, logger.New("mint"))
	if nil != err {
		return err
	}

	key := storage.Key{
		Algorithm:   m.algorithm.Name,
		Target:      m.target,
		Fingerprint: fingerprint,
	}

	var store *storage.Store
	if database := c.String("database"); "" != database {
		store, err = storage.Open(database, storage.ReadWrite, logger.New("storage"))
		if nil != err {
			return err
		}
		defer store.Close()

		if nonce, ok := store.Get(key); ok && miner.Check(fingerprint, nonce) {
			if m.verbose {
				fmt.Fprintf(m.e, "stored nonce: %s\n", nonceHex(nonce))
			}
			return printMint(m, miner, nonce, true, 0)
		}
	}

	if timeout > 0 {
		timer := time.AfterFunc(timeout, miner.Interrupt)
		defer timer.Stop()
	}

	if m.verbose {
		fmt.Fprintf(m.e, "searching: target: %d  digest: %s  delay: %s\n", m.target, m.algorithm, miner.Delay())
	}

	start := time.Now()
	nonce, ok := miner.Search(fingerprint)
	elapsed := time.Since(start)
	if !ok {
		return fault.SolutionNotFound
	}

	if nil != store {
		if err := store.Put(key, nonce); nil != err {
			return err
		}
	}

	return printMint(m, miner, nonce, false, elapsed)
}

func printMint(m *metadata, miner *mint.Miner, nonce uint64, stored bool, elapsed time.Duration) error {
	out := struct {
		Algorithm string  `json:"algorithm"`
		Target    uint    `json:"target"`
		Nonce     string  `json:"nonce"`
		Stored    bool    `json:"stored"`
		Attempts  uint64  `json:"attempts"`
		Seconds   float64 `json:"seconds"`
	}{
		Algorithm: miner.Algorithm().Name,
		Target:    miner.Target(),
		Nonce:     nonceHex(nonce),
		Stored:    stored,
		Attempts:  miner.Statistics().Attempts,
		Seconds:   elapsed.Seconds(),
	}
	return printJson(m.w, out)
}
