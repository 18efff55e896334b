// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/mintd/digest"
	"github.com/bitmark-inc/mintd/storage"
)

type solutionItem struct {
	Algorithm   string `json:"algorithm"`
	Target      uint   `json:"target"`
	Fingerprint string `json:"fingerprint"`
	Nonce       string `json:"nonce"`
}

func runSolutions(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	database := c.String("database")
	if "" == database {
		return ErrMissingDatabase
	}

	store, err := storage.Open(database, storage.ReadOnly, logger.New("storage"))
	if nil != err {
		return err
	}
	defer store.Close()

	solutions, err := store.List()
	if nil != err {
		return err
	}

	items := make([]solutionItem, 0, len(solutions))
	for _, s := range solutions {
		items = append(items, solutionItem{
			Algorithm:   s.Key.Algorithm,
			Target:      s.Key.Target,
			Fingerprint: digest.Hex(s.Key.Fingerprint),
			Nonce:       nonceHex(s.Nonce),
		})
	}
	return printJson(m.w, items)
}
