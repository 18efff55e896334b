// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/mintd/digest"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/mint"
)

const testFingerprint = "0102030405060708"

// run the application in a scratch log directory, return stdout
func run(t *testing.T, arguments ...string) (string, error) {
	dir, err := ioutil.TempDir("", "mint-cli")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	var w, e bytes.Buffer
	app := newApp(&w, &e)

	args := append([]string{"mint-cli", "--log-directory", dir}, arguments...)
	err = app.Run(args)
	return w.String(), err
}

func decode(t *testing.T, s string) map[string]interface{} {
	out := map[string]interface{}{}
	require.Nil(t, json.Unmarshal([]byte(s), &out), "decode: %s", s)
	return out
}

func TestDigests(t *testing.T) {
	s, err := run(t, "digests")
	require.Nil(t, err, "digests")

	out := decode(t, s)
	assert.Equal(t, digest.Default.Name, out["default"], "wrong default")
	assert.Equal(t, len(digest.Names()), len(out["algorithms"].([]interface{})), "wrong count")
}

func TestDigest(t *testing.T) {
	s, err := run(t, "--digest", "sha3-256", "digest", "--fingerprint", testFingerprint, "--nonce", "0x0a")
	require.Nil(t, err, "digest")

	out := decode(t, s)
	assert.Equal(t, "sha3-256", out["algorithm"], "wrong algorithm")
	assert.Equal(t, "000000000000000a"+testFingerprint, out["payload"], "wrong payload")

	a, _ := digest.Lookup("sha3-256")
	d := a.Sum(mint.Payload([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 10))
	assert.Equal(t, digest.Hex(d), out["digest"], "wrong digest")
	assert.Equal(t, float64(digest.LeadingZeros(d)), out["leading_zeros"], "wrong leading zeros")
}

func TestMintThenCheck(t *testing.T) {
	s, err := run(t, "--target", "4", "mint", "--fingerprint", testFingerprint)
	require.Nil(t, err, "mint")

	out := decode(t, s)
	nonce := out["nonce"].(string)
	assert.Equal(t, float64(4), out["target"], "wrong target")
	assert.Equal(t, false, out["stored"], "unexpected stored")

	s, err = run(t, "--target", "4", "check", "--fingerprint", testFingerprint, "--nonce", nonce)
	require.Nil(t, err, "check")
	assert.Equal(t, true, decode(t, s)["valid"], "minted nonce not valid")
}

func TestCheckFails(t *testing.T) {
	// no 512 bit digest has more than 512 leading zeros
	s, err := run(t, "--target", "513", "check", "--fingerprint", testFingerprint, "--nonce", "1")
	assert.Equal(t, ErrNonceFailsTarget, err, "wrong error")
	assert.Equal(t, false, decode(t, s)["valid"], "impossible target met")
}

func TestMintTimeout(t *testing.T) {
	_, err := run(t, "--target", "1024", "mint", "--fingerprint", testFingerprint, "--delay", "1ms", "--timeout", "50ms")
	assert.Equal(t, fault.SolutionNotFound, err, "wrong error")
}

func TestMintDatabase(t *testing.T) {
	dir, err := ioutil.TempDir("", "mint-cli-db")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)
	database := filepath.Join(dir, "solutions.leveldb")

	s, err := run(t, "--target", "3", "mint", "--fingerprint", testFingerprint, "--database", database)
	require.Nil(t, err, "first mint")
	first := decode(t, s)
	assert.Equal(t, false, first["stored"], "first result was stored")

	s, err = run(t, "--target", "3", "mint", "--fingerprint", testFingerprint, "--database", database)
	require.Nil(t, err, "second mint")
	second := decode(t, s)
	assert.Equal(t, true, second["stored"], "second result not stored")
	assert.Equal(t, first["nonce"], second["nonce"], "stored nonce differs")

	s, err = run(t, "solutions", "--database", database)
	require.Nil(t, err, "solutions")

	var items []solutionItem
	require.Nil(t, json.Unmarshal([]byte(s), &items), "decode solutions")
	require.Equal(t, 1, len(items), "wrong solution count")
	assert.Equal(t, digest.Default.Name, items[0].Algorithm, "wrong algorithm")
	assert.Equal(t, uint(3), items[0].Target, "wrong target")
	assert.Equal(t, testFingerprint, items[0].Fingerprint, "wrong fingerprint")
	assert.Equal(t, first["nonce"], items[0].Nonce, "wrong nonce")
}

func TestFingerprint(t *testing.T) {
	dir, err := ioutil.TempDir("", "mint-cli-file")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)
	fileName := filepath.Join(dir, "asset")
	require.Nil(t, ioutil.WriteFile(fileName, []byte{}, 0600), "write file")

	s, err := run(t, "--digest", "blake2b-512", "fingerprint", "--file", fileName)
	require.Nil(t, err, "fingerprint")
	assert.Equal(t, digest.Hex(digest.Default.Sum([]byte{})), decode(t, s)["fingerprint"], "wrong fingerprint")
}

func TestErrors(t *testing.T) {
	fixtures := []struct {
		arguments []string
		expected  error
	}{
		{[]string{"--digest", "md5", "digests"}, fault.UnknownDigestAlgorithm},
		{[]string{"--target", "-1", "digests"}, fault.InvalidTarget},
		{[]string{"--target", "65536", "digests"}, fault.InvalidTarget},
		{[]string{"check", "--nonce", "1"}, fault.MissingFingerprint},
		{[]string{"check", "--fingerprint", "xyz", "--nonce", "1"}, fault.CannotDecodeFingerprint},
		{[]string{"check", "--fingerprint", testFingerprint, "--nonce", "many"}, ErrInvalidNonce},
		{[]string{"mint", "--fingerprint", testFingerprint, "--delay", "later"}, fault.InvalidDelay},
		{[]string{"solutions"}, ErrMissingDatabase},
		{[]string{"fingerprint"}, ErrMissingFile},
	}

	for i, f := range fixtures {
		_, err := run(t, f.arguments...)
		assert.Equal(t, f.expected, err, "fixture: %d: %v", i, f.arguments)
	}
}

func TestParseNonce(t *testing.T) {
	fixtures := []struct {
		text     string
		expected uint64
	}{
		{"0", 0},
		{"42", 42},
		{"0x2a", 42},
		{"0xffffffffffffffff", 0xffffffffffffffff},
		{strconv.FormatUint(1<<63, 10), 1 << 63},
	}
	for _, f := range fixtures {
		n, err := parseNonce(f.text)
		assert.Nil(t, err, "parse: %q", f.text)
		assert.Equal(t, f.expected, n, "parse: %q", f.text)
	}

	for _, bad := range []string{"", "-1", "0x1ffffffffffffffff", "ten"} {
		_, err := parseNonce(bad)
		assert.Equal(t, ErrInvalidNonce, err, "accepted: %q", bad)
	}
}
