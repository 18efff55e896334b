// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/mintd/fault"
)

// hex fingerprint, an optional 0x prefix is allowed
func decodeFingerprint(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if "" == s {
		return nil, fault.MissingFingerprint
	}
	fingerprint, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.CannotDecodeFingerprint
	}
	return fingerprint, nil
}

// decimal, or hex with a 0x prefix
func parseNonce(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return 0, ErrInvalidNonce
	}
	nonce, err := strconv.ParseUint(s, 0, 64)
	if nil != err {
		return 0, ErrInvalidNonce
	}
	return nonce, nil
}

func nonceHex(nonce uint64) string {
	return fmt.Sprintf("0x%016x", nonce)
}
