// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	CannotDecodeFingerprint  = InvalidError("cannot decode fingerprint")
	ConfigurationFileRemoved = ProcessError("configuration file removed")
	DatabaseIsReadOnly       = InvalidError("database is read only")
	InvalidDelay             = InvalidError("invalid delay")
	InvalidLoggerChannel     = InvalidError("invalid logger channel")
	InvalidNonceLength       = LengthError("invalid nonce length")
	InvalidSolutionKey       = InvalidError("invalid solution key")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	InvalidTarget            = InvalidError("invalid target")
	MissingFingerprint       = InvalidError("missing fingerprint")
	NotInitialised           = NotFoundError("not initialised")
	SolutionNotFound         = NotFoundError("solution not found")
	UnknownDigestAlgorithm   = NotFoundError("unknown digest algorithm")
	WrongEndpointString      = InvalidError("wrong endpoint string")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
