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
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBlackHeightMismatch  = ProcessError("black height mismatch")
	ErrColorViolation       = ProcessError("red node has a red child")
	ErrCountMismatch        = ProcessError("node count mismatch")
	ErrInvalidConfiguration = InvalidError("configuration did not return a table")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidReplacement   = InvalidError("invalid replacement policy")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidVariant       = InvalidError("invalid tree variant")
	ErrInvalidWorkload      = InvalidError("invalid workload")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrOracleMismatch       = ProcessError("tree differs from reference map")
	ErrOrderViolation       = ProcessError("key order violation")
	ErrParentLink           = ProcessError("inconsistent parent link")
	ErrRedRoot              = ProcessError("root is red")
	ErrTreeUnbalanced       = ProcessError("tree is unbalanced")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, unwrapping any added context
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
