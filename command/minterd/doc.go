// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// minterd - receive fingerprints, search for nonces, return them
//
// jobs arrive on a zmq PULL socket as [job-id, fingerprint] and
// results leave on a PUSH socket as [job-id, nonce] with the nonce as
// 8 big endian bytes
package main
