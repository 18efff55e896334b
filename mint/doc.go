// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mint - search for a nonce whose digest has enough leading
// zero bits
//
// a Miner is used for one search; once interrupted it stays
// interrupted and every handle cloned from it stops too
package mint
