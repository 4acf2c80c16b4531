// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBidIdExists            = ExistsError("bid id already exists")
	ErrCSVRead                = ProcessError("csv read failed")
	ErrEmptyBidId             = InvalidError("bid id is empty")
	ErrInvalidAmount          = InvalidError("invalid amount")
	ErrInvalidColumns         = InvalidError("invalid column indexes")
	ErrInvalidDuplicatePolicy = InvalidError("invalid duplicate policy")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidRange           = InvalidError("invalid offset or limit")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrMissingBidFile         = InvalidError("bid file is required")
	ErrMissingColumn          = InvalidError("row has too few columns")
	ErrNotABidFile            = InvalidError("bid file is not a regular file")
	ErrNotFoundBidId          = NotFoundError("bid id not found")
	ErrNotFoundConfigFile     = NotFoundError("config file is not found")
	ErrTreeCorrupt            = ProcessError("tree is corrupt")
	ErrWatcherStopped         = ProcessError("watcher is stopped")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
