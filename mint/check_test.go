// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mintd/digest"
	"github.com/bitmark-inc/mintd/mint"
)

var testFingerprint = []byte{1, 2, 3, 4, 5, 6, 7, 8}

func TestPayload(t *testing.T) {
	p := mint.Payload(testFingerprint, 0x0102030405060708)
	expected := []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		1, 2, 3, 4, 5, 6, 7, 8,
	}
	assert.Equal(t, expected, p, "wrong payload")

	assert.Equal(t, make([]byte, mint.NonceSize), mint.Payload(nil, 0), "wrong empty payload")
}

func TestSatisfies(t *testing.T) {
	fixture := []struct {
		d        []byte
		target   uint
		expected bool
	}{
		// target zero decided by the first byte's top bit
		{[]byte{0x80, 0x00}, 0, false},
		{[]byte{0xff}, 0, false},
		{[]byte{0x40, 0xff}, 0, true},
		{[]byte{0x00, 0xff}, 0, true},

		// terminate on a non-zero byte: needs more than target zeros
		{[]byte{0x20}, 2, false}, // 2 leading zeros
		{[]byte{0x10}, 2, true},  // 3 leading zeros
		{[]byte{0x01}, 7, false},
		{[]byte{0x01}, 6, true},

		// terminate inside a zero byte
		{[]byte{0x00, 0xff}, 8, true},
		{[]byte{0x00, 0xff}, 9, false},
		{[]byte{0x00, 0x7f}, 9, false}, // 9 zeros but not more than 9-8
		{[]byte{0x00, 0x3f}, 9, true},
		{[]byte{0x00, 0x00, 0xff}, 16, true},
		{[]byte{0x00, 0x00, 0xff}, 17, false},

		// running out of digest
		{[]byte{0x00, 0x00}, 16, true},
		{[]byte{0x00, 0x00}, 17, false},
		{[]byte{0x00, 0x00}, 1000, false},
		{[]byte{}, 0, false},
	}

	for i, s := range fixture {
		actual := mint.Satisfies(s.d, s.target)
		assert.Equal(t, s.expected, actual, "%d: digest: %x  target: %d", i, s.d, s.target)
	}
}

func TestCheckNonceDeterministic(t *testing.T) {
	a := digest.Default
	for nonce := uint64(0); nonce < 100; nonce += 1 {
		first := mint.CheckNonce(a, testFingerprint, nonce, 2)
		for i := 0; i < 3; i += 1 {
			assert.Equal(t, first, mint.CheckNonce(a, testFingerprint, nonce, 2), "nonce: %d changed result", nonce)
		}
	}
}

func TestCheckNonceMonotonic(t *testing.T) {
	for _, name := range []string{digest.Blake2b512, digest.Blake2b256, digest.SHA3256} {
		a, _ := digest.Lookup(name)
		for nonce := uint64(0); nonce < 500; nonce += 1 {
			for target := uint(1); target <= 12; target += 1 {
				if mint.CheckNonce(a, testFingerprint, nonce, target) {
					for lower := uint(0); lower < target; lower += 1 {
						assert.True(t, mint.CheckNonce(a, testFingerprint, nonce, lower),
							"%s nonce: %d passes target: %d but not: %d", name, nonce, target, lower)
					}
				}
			}
		}
	}
}

// agrees with the leading zero count of the digest itself
func TestCheckNonceAgainstLeadingZeros(t *testing.T) {
	a := digest.Default
	for nonce := uint64(0); nonce < 1000; nonce += 1 {
		d := a.Sum(mint.Payload(testFingerprint, nonce))
		lz := digest.LeadingZeros(d)
		first := d[0]

		if 0 == first {
			// at least 8 zeros, passes every target up to 8
			assert.True(t, mint.CheckNonce(a, testFingerprint, nonce, 8), "nonce: %d", nonce)
		} else {
			assert.Equal(t, lz > 0, mint.CheckNonce(a, testFingerprint, nonce, 0), "nonce: %d target 0", nonce)
			assert.Equal(t, lz > 2, mint.CheckNonce(a, testFingerprint, nonce, 2), "nonce: %d target 2", nonce)
		}
	}
}

func TestCheckNonceBeyondDigest(t *testing.T) {
	a := digest.Default
	for nonce := uint64(0); nonce < 100; nonce += 1 {
		assert.False(t, mint.CheckNonce(a, testFingerprint, nonce, uint(a.Bits()+1)), "nonce: %d", nonce)
	}
}
