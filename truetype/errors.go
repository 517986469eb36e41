// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a hinting failure, per spec.md 7.
type ErrorKind int

const (
	ErrStackUnderflow ErrorKind = iota
	ErrStackOverflow
	ErrBadPointIndex
	ErrBadCvtIndex
	ErrBadZone
	ErrDivByZero
	ErrUnknownOpcode
	ErrMissingMarker
	ErrCallStackOverflow
	ErrInstructionLimit
	ErrBadFunction
)

var errorKindMessages = [...]string{
	ErrStackUnderflow:    "stack underflow",
	ErrStackOverflow:     "stack overflow",
	ErrBadPointIndex:     "point out of range",
	ErrBadCvtIndex:       "cvt index out of range",
	ErrBadZone:           "invalid zone",
	ErrDivByZero:         "division by zero",
	ErrUnknownOpcode:     "unrecognized instruction",
	ErrMissingMarker:     "unbalanced IF, ELSE or FDEF",
	ErrCallStackOverflow: "call stack overflow",
	ErrInstructionLimit:  "too many instructions: limit exceeded",
	ErrBadFunction:       "undefined or inactive function",
}

// HintError is the concrete error type returned from a program run. It
// keeps the instruction pointer and opcode where the failure occurred so
// a caller can log or report precisely, while Error() renders the same
// family of short "truetype: hinting: ..." strings the teacher's
// errors.New call sites produced (so callers can substring-match on
// them, e.g. "underflow", "limit").
type HintError struct {
	Kind   ErrorKind
	Opcode byte
	IP     int
	cause  error
}

func (e *HintError) Error() string {
	msg := errorKindMessages[e.Kind]
	return fmt.Sprintf("truetype: hinting: %s", msg)
}

// Unwrap lets errors.Is/errors.As reach a wrapped cause, if any.
func (e *HintError) Unwrap() error { return e.cause }

func newHintError(kind ErrorKind, opcode byte, ip int) *HintError {
	return &HintError{Kind: kind, Opcode: opcode, IP: ip}
}

// wrapHintError attaches additional context to a HintError using
// github.com/pkg/errors, preserving the original for errors.Cause.
func wrapHintError(err *HintError, context string) error {
	return errors.Wrapf(err, "truetype: hinting: %s", context)
}
