// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/mintd/digest"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/mint"
)

type metadata struct {
	algorithm *digest.Algorithm
	target    uint
	verbose   bool
	e         io.Writer
	w         io.Writer
}

const (
	defaultTarget  = 20
	logFileName    = "mint-cli.log"
	logFileSize    = 1048576
	logFileCount   = 2
	logDefaultTag  = "critical"
	logVerboseTags = "info"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "mint-cli"
	app.Usage = "compute, check and search for nonces"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "digest, d",
			Value: digest.Default.Name,
			Usage: " digest `ALGORITHM` (see: digests)",
		},
		cli.IntFlag{
			Name:  "target, t",
			Value: defaultTarget,
			Usage: " required leading zero `BITS`",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: os.TempDir(),
			Usage: " write the log file to `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "digests",
			Usage:     "list the supported digest algorithms",
			ArgsUsage: " ",
			Action:    runDigests,
		},
		{
			Name:      "fingerprint",
			Usage:     "digest a file to produce a fingerprint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*file to digest `FILE`",
				},
			},
			Action: runFingerprint,
		},
		{
			Name:      "digest",
			Usage:     "show the digest of a fingerprint and nonce",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fingerprintFlag,
				nonceFlag,
			},
			Action: runDigest,
		},
		{
			Name:      "check",
			Usage:     "check that a nonce meets the target, exits non-zero if not",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fingerprintFlag,
				nonceFlag,
			},
			Action: runCheck,
		},
		{
			Name:      "mint",
			Usage:     "search for a nonce that meets the target",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fingerprintFlag,
				cli.StringFlag{
					Name:  "delay, w",
					Value: "0s",
					Usage: " pause between attempts `DURATION`",
				},
				cli.DurationFlag{
					Name:  "timeout, x",
					Value: 0,
					Usage: " give up after `DURATION`, zero for no limit",
				},
				cli.StringFlag{
					Name:  "database, b",
					Value: "",
					Usage: " reuse and record solutions in leveldb `DIR`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "solutions",
			Usage:     "list the solutions recorded in a database",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "database, b",
					Value: "",
					Usage: "*leveldb `DIR`",
				},
			},
			Action: runSolutions,
		},
	}

	app.Before = func(c *cli.Context) error {

		algorithm, err := digest.Lookup(c.GlobalString("digest"))
		if nil != err {
			return err
		}

		target := c.GlobalInt("target")
		if target < 0 || target > mint.MaxTarget {
			return fault.InvalidTarget
		}

		verbose := c.GlobalBool("verbose")
		level := logDefaultTag
		if verbose {
			level = logVerboseTags
		}
		logging := logger.Configuration{
			Directory: c.GlobalString("log-directory"),
			File:      logFileName,
			Size:      logFileSize,
			Count:     logFileCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: level,
			},
		}
		if err := logger.Initialise(logging); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			algorithm: algorithm,
			target:    uint(target),
			verbose:   verbose,
			e:         c.App.ErrWriter,
			w:         c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	return app
}

var (
	fingerprintFlag = cli.StringFlag{
		Name:  "fingerprint, f",
		Value: "",
		Usage: "*fingerprint `HEX`",
	}
	nonceFlag = cli.StringFlag{
		Name:  "nonce, n",
		Value: "",
		Usage: "*nonce `NUMBER`, decimal or 0x hex",
	}
)
