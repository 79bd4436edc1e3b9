// Copyright (c) 2026 The Stacks PoX developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"errors"
	"fmt"
)

// ErrRevert is a contract-visible failure: the operation was rejected and
// no state mutation took place. The numeric code is the value crossing the
// boundary to callers, matching the contract's error enumeration.
type ErrRevert struct {
	code    uint32
	message string
}

func New(code uint32, message string) *ErrRevert {
	return &ErrRevert{
		code:    code,
		message: message,
	}
}

func (e *ErrRevert) Error() string {
	return fmt.Sprintf("%s (err u%d)", e.message, e.code)
}

// Code returns the numeric error code.
func (e *ErrRevert) Code() uint32 {
	return e.code
}

func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRevert
	return errors.As(e, &ve)
}

// CodeOf extracts the numeric code from a revert error.
// The second return value is false for any other error.
func CodeOf(err error) (uint32, bool) {
	var ve *ErrRevert
	if errors.As(err, &ve) {
		return ve.code, true
	}
	return 0, false
}
