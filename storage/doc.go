// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - persistent record of solved fingerprints
//
// a level db keyed by digest algorithm, target and fingerprint with
// an expiring in-memory cache in front of it
package storage
