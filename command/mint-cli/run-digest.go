// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/mintd/digest"
	"github.com/bitmark-inc/mintd/mint"
)

func runDigests(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "%s\n", strings.Join(digest.Names(), "\n"))
		return nil
	}

	out := struct {
		Default    string   `json:"default"`
		Algorithms []string `json:"algorithms"`
	}{
		Default:    digest.Default.Name,
		Algorithms: digest.Names(),
	}
	return printJson(m.w, out)
}

func runFingerprint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	if "" == fileName {
		return ErrMissingFile
	}

	if m.verbose {
		fmt.Fprintf(m.e, "digesting file: %s\n", fileName)
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}

	out := struct {
		FileName    string `json:"file_name"`
		Algorithm   string `json:"algorithm"`
		Fingerprint string `json:"fingerprint"`
	}{
		FileName:    fileName,
		Algorithm:   m.algorithm.Name,
		Fingerprint: digest.Hex(m.algorithm.Sum(data)),
	}
	return printJson(m.w, out)
}

func runDigest(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	fingerprint, err := decodeFingerprint(c.String("fingerprint"))
	if nil != err {
		return err
	}
	nonce, err := parseNonce(c.String("nonce"))
	if nil != err {
		return err
	}

	payload := mint.Payload(fingerprint, nonce)
	d := m.algorithm.Sum(payload)

	out := struct {
		Algorithm    string `json:"algorithm"`
		Payload      string `json:"payload"`
		Digest       string `json:"digest"`
		LeadingZeros int    `json:"leading_zeros"`
	}{
		Algorithm:    m.algorithm.Name,
		Payload:      digest.Hex(payload),
		Digest:       digest.Hex(d),
		LeadingZeros: digest.LeadingZeros(d),
	}
	return printJson(m.w, out)
}

func runCheck(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	fingerprint, err := decodeFingerprint(c.String("fingerprint"))
	if nil != err {
		return err
	}
	nonce, err := parseNonce(c.String("nonce"))
	if nil != err {
		return err
	}

	valid := mint.CheckNonce(m.algorithm, fingerprint, nonce, m.target)

	if m.verbose {
		fmt.Fprintf(m.e, "nonce: %s  target: %d  valid: %t\n", nonceHex(nonce), m.target, valid)
	}

	out := struct {
		Algorithm string `json:"algorithm"`
		Target    uint   `json:"target"`
		Nonce     string `json:"nonce"`
		Valid     bool   `json:"valid"`
	}{
		Algorithm: m.algorithm.Name,
		Target:    m.target,
		Nonce:     nonceHex(nonce),
		Valid:     valid,
	}
	if err := printJson(m.w, out); nil != err {
		return err
	}
	if !valid {
		return ErrNonceFailsTarget
	}
	return nil
}
