// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - fixed size digest functions used for minting
//
// the default is blake2b-512; argon2d uses the same memory intensive
// parameters as the block header digest
package digest
