// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint

import (
	"encoding/binary"
	"math/bits"

	"github.com/bitmark-inc/mintd/digest"
)

// NonceSize - bytes in an encoded nonce
const NonceSize = 8

// Payload - the bytes that are digested: big endian nonce followed by
// the fingerprint
func Payload(fingerprint []byte, nonce uint64) []byte {
	payload := make([]byte, NonceSize, NonceSize+len(fingerprint))
	binary.BigEndian.PutUint64(payload, nonce)
	return append(payload, fingerprint...)
}

// CheckNonce - true if the digest of nonce and fingerprint meets the
// target
func CheckNonce(algorithm *digest.Algorithm, fingerprint []byte, nonce uint64, target uint) bool {
	return Satisfies(algorithm.Sum(Payload(fingerprint, nonce)), target)
}

// Satisfies - walk the digest a byte at a time
//
// a zero byte succeeds if no more than 8 bits remain, the first
// non-zero byte always decides and a digest that runs out fails
func Satisfies(d []byte, target uint) bool {
	remaining := target
	for _, b := range d {
		if 0 == b {
			if remaining <= 8 {
				return true
			}
			remaining -= 8
			continue
		}
		return uint(bits.LeadingZeros8(b)) > remaining
	}
	return false
}
