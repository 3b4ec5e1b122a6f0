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
	ErrCycleDetected         = InvalidError("parent assignment would create a cycle")
	ErrDatabaseVersion       = InvalidError("database version is newer than supported")
	ErrDatabaseVersionLength = InvalidError("database version record has invalid length")
	ErrDeltaMismatch         = ProcessError("pending delta does not match ancestor chain")
	ErrDuplicateName         = ExistsError("name is already registered")
	ErrInvalidAmount         = InvalidError("payment amount must not be negative")
	ErrInvalidConfiguration  = InvalidError("configuration file must return a table")
	ErrInvalidDirectory      = InvalidError("path is not a valid directory")
	ErrInvalidFileName       = InvalidError("file name must not contain a path")
	ErrInvalidFraction       = InvalidError("commission fraction must be between 0 and 1")
	ErrInvalidName           = InvalidError("name must not be empty")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingColumn         = InvalidError("required column is missing from header")
	ErrNotFound              = NotFoundError("person not found")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrReadOnly              = ProcessError("database is open read only")
	ErrTruncatedRecord       = ProcessError("stored record is truncated")
	ErrUnknownPaymentType    = NotFoundError("payment type is not configured")
	ErrUnsupportedResetScope = InvalidError("reset scope is not supported")
	ErrUnsupportedReportView = InvalidError("report view is not supported")
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
