// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"math"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/mintd/fault"
)

// all solution keys start with this byte
const solutionPrefix = 'S'

// Key - identifies one solved search
type Key struct {
	Algorithm   string
	Target      uint
	Fingerprint []byte
}

// Solution - a stored record
type Solution struct {
	Key   Key
	Nonce uint64
}

// limits of the encoded form
const (
	maxAlgorithmLength = math.MaxUint8
	maxTarget          = math.MaxUint32
)

// true if the key can be encoded without truncation
func (k Key) valid() bool {
	return len(k.Algorithm) <= maxAlgorithmLength && k.Target <= maxTarget
}

// prefix ++ len(algorithm) ++ algorithm ++ target(4, big endian) ++ fingerprint
func (k Key) bytes() []byte {
	b := make([]byte, 0, 2+len(k.Algorithm)+4+len(k.Fingerprint))
	b = append(b, solutionPrefix, byte(len(k.Algorithm)))
	b = append(b, k.Algorithm...)
	target := make([]byte, 4)
	binary.BigEndian.PutUint32(target, uint32(k.Target))
	b = append(b, target...)
	return append(b, k.Fingerprint...)
}

func keyFromBytes(b []byte) (Key, bool) {
	if len(b) < 2 || solutionPrefix != b[0] {
		return Key{}, false
	}
	n := int(b[1])
	if len(b) < 2+n+4 {
		return Key{}, false
	}
	fingerprint := make([]byte, len(b)-2-n-4)
	copy(fingerprint, b[2+n+4:])
	return Key{
		Algorithm:   string(b[2 : 2+n]),
		Target:      uint(binary.BigEndian.Uint32(b[2+n:])),
		Fingerprint: fingerprint,
	}, true
}

// Get - the nonce recorded for a key
func (s *Store) Get(key Key) (uint64, bool) {
	if !key.valid() {
		return 0, false
	}
	k := key.bytes()
	if nonce, ok := s.cache.get(k); ok {
		return nonce, true
	}

	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return 0, false
	}

	value, err := s.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return 0, false
	} else if nil != err {
		s.log.Errorf("get: %x  error: %s", k, err)
		return 0, false
	}
	if 8 != len(value) {
		s.log.Errorf("get: %x  error: %s: %d", k, fault.InvalidNonceLength, len(value))
		return 0, false
	}

	nonce := binary.BigEndian.Uint64(value)
	s.cache.set(k, nonce)
	return nonce, true
}

// Put - record the nonce for a key
func (s *Store) Put(key Key, nonce uint64) error {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return fault.NotInitialised
	}
	if s.readOnly {
		return fault.DatabaseIsReadOnly
	}
	if !key.valid() {
		return fault.InvalidSolutionKey
	}

	k := key.bytes()
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, nonce)

	if err := s.db.Put(k, value, nil); nil != err {
		return err
	}
	s.cache.set(k, nonce)
	s.log.Debugf("put: %s/%d fingerprint: %x  nonce: 0x%016x", key.Algorithm, key.Target, key.Fingerprint, nonce)
	return nil
}

// List - every stored solution in key order
func (s *Store) List() ([]Solution, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.NotInitialised
	}

	iter := s.db.NewIterator(ldb_util.BytesPrefix([]byte{solutionPrefix}), nil)
	defer iter.Release()

	solutions := make([]Solution, 0, 16)
	for iter.Next() {
		key, ok := keyFromBytes(iter.Key())
		if !ok || 8 != len(iter.Value()) {
			s.log.Warnf("skip malformed record: %x", iter.Key())
			continue
		}
		solutions = append(solutions, Solution{
			Key:   key,
			Nonce: binary.BigEndian.Uint64(iter.Value()),
		})
	}
	return solutions, iter.Error()
}
