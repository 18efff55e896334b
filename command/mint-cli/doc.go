// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// mint-cli - compute, check and search for nonces from the command line
//
// results are printed as JSON on stdout
//
//	mint-cli --target 12 mint --fingerprint 0102030405060708
//	mint-cli --target 12 check --fingerprint 0102030405060708 --nonce 0x5f3a…
//	mint-cli solutions --database data/solutions.leveldb
package main
