// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint

import (
	"time"

	"github.com/bitmark-inc/mintd/digest"
	"github.com/bitmark-inc/mintd/fault"
)

// MaxTarget - largest target a configuration accepts, well beyond
// the bit length of any supported digest
const MaxTarget = 0xffff

// Configuration - the mint block of a configuration file
type Configuration struct {
	Target int    `gluamapper:"target" json:"target"`
	Delay  string `gluamapper:"delay" json:"delay"`   // Go duration e.g. "1s", "250ms"
	Digest string `gluamapper:"digest" json:"digest"` // blank for the default
}

// settings - validated form of a configuration
type settings struct {
	target    uint
	delay     time.Duration
	algorithm *digest.Algorithm
}

func (configuration *Configuration) settings() (*settings, error) {
	if configuration.Target < 0 || configuration.Target > MaxTarget {
		return nil, fault.InvalidTarget
	}

	delay := time.Duration(0)
	if "" != configuration.Delay {
		d, err := time.ParseDuration(configuration.Delay)
		if nil != err || d < 0 {
			return nil, fault.InvalidDelay
		}
		delay = d
	}

	algorithm := digest.Default
	if "" != configuration.Digest {
		a, err := digest.Lookup(configuration.Digest)
		if nil != err {
			return nil, err
		}
		algorithm = a
	}

	return &settings{
		target:    uint(configuration.Target),
		delay:     delay,
		algorithm: algorithm,
	}, nil
}

// Validate - check a configuration without creating a miner
func (configuration *Configuration) Validate() error {
	_, err := configuration.settings()
	return err
}
