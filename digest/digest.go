// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"math/bits"
	"sort"
	"strings"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/mintd/fault"
)

// algorithm names as written in configuration files
const (
	Blake2b512 = "blake2b-512"
	Blake2b256 = "blake2b-256"
	SHA3256    = "sha3-256"
	Argon2d    = "argon2d"
)

// internal argon2 hashing parameters
const (
	argon2Length      = 32
	argon2Mode        = argon2.ModeArgon2d
	argon2Memory      = 1 << 17 // 128 MiB
	argon2Parallelism = 1
	argon2Iterations  = 4
	argon2Version     = argon2.Version13
)

// Algorithm - a named fixed output digest function
type Algorithm struct {
	Name   string
	Length int // bytes
	sum    func(data []byte) []byte
}

// Default - the algorithm used when none is configured
var Default = algorithms[Blake2b512]

var algorithms = map[string]*Algorithm{
	Blake2b512: {
		Name:   Blake2b512,
		Length: blake2b.Size,
		sum: func(data []byte) []byte {
			d := blake2b.Sum512(data)
			return d[:]
		},
	},
	Blake2b256: {
		Name:   Blake2b256,
		Length: blake2b.Size256,
		sum: func(data []byte) []byte {
			d := blake2b.Sum256(data)
			return d[:]
		},
	},
	SHA3256: {
		Name:   SHA3256,
		Length: 32,
		sum: func(data []byte) []byte {
			d := sha3.Sum256(data)
			return d[:]
		},
	},
	Argon2d: {
		Name:   Argon2d,
		Length: argon2Length,
		sum:    argon2Sum,
	},
}

// Lookup - find an algorithm by name, case is ignored
func Lookup(name string) (*Algorithm, error) {
	a, ok := algorithms[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fault.UnknownDigestAlgorithm
	}
	return a, nil
}

// Names - sorted list of the supported algorithm names
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sum - digest of data, always Length bytes
func (a *Algorithm) Sum(data []byte) []byte {
	return a.sum(data)
}

// Bits - digest length in bits
func (a *Algorithm) Bits() int {
	return 8 * a.Length
}

// String - the algorithm name for the fmt package
func (a *Algorithm) String() string {
	return a.Name
}

// LeadingZeros - count of zero bits from the most significant bit of
// the first byte
func LeadingZeros(d []byte) int {
	n := 0
	for _, b := range d {
		if 0 != b {
			return n + bits.LeadingZeros8(b)
		}
		n += 8
	}
	return n
}

// Hex - digest as hex text, first byte first
func Hex(d []byte) string {
	return hex.EncodeToString(d)
}

func argon2Sum(data []byte) []byte {
	context := &argon2.Context{
		Iterations:  argon2Iterations,
		Memory:      argon2Memory,
		Parallelism: argon2Parallelism,
		HashLen:     argon2Length,
		Mode:        argon2Mode,
		Version:     argon2Version,
	}

	// payload always carries an 8 byte nonce so meets the minimum salt size
	hash, err := argon2.Hash(context, data, data)
	fault.PanicIfError("digest.argon2Sum", err)

	return hash
}
