// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/mintd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidNonce     = fault.InvalidError("invalid nonce")
	ErrMissingDatabase  = fault.InvalidError("missing database")
	ErrMissingFile      = fault.InvalidError("missing file name")
	ErrNonceFailsTarget = fault.InvalidError("nonce does not meet target")
	ErrNegativeTimeout  = fault.InvalidError("negative timeout")
)
