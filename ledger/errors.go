// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmissionAbdicated is returned when submission rights for the
	// targeted function have been permanently foreclosed.
	ErrSubmissionAbdicated = errors.New(
		"submission rights abdicated for function",
	)
	// ErrNotMatured is returned when an execute is attempted before the
	// proposal's maturity timestamp.
	ErrNotMatured = errors.New("proposal timelock has not elapsed")
	// ErrNoSuchProposal is returned when an execute or revoke targets an
	// operation with no pending proposal.
	ErrNoSuchProposal = errors.New("no pending proposal for operation")
	// ErrUnauthorized is returned when the caller lacks the ledger-side
	// role for the attempted operation.
	ErrUnauthorized = errors.New("caller not authorized")
	// ErrLedgerUnavailable is the class marker for transport or
	// confirmation failures. Match with errors.Is; the concrete error is
	// a LedgerUnavailableError carrying the cause.
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	// ErrMalformedOp is returned when encoded operation bytes cannot be
	// decoded.
	ErrMalformedOp = errors.New("malformed encoded operation")
	// ErrValueOutOfRange is returned when a numeric argument cannot be
	// represented in a single encoded word.
	ErrValueOutOfRange = errors.New("value out of range for encoding")
)

// TimelockNotZeroError is returned by the instant-apply fast path when the
// advisory read shows a non-zero timelock duration. No transaction has
// been sent when this error is returned; callers should fall back to the
// two-phase submit/execute path.
type TimelockNotZeroError struct {
	current uint64
}

func NewTimelockNotZeroError(current uint64) TimelockNotZeroError {
	return TimelockNotZeroError{current: current}
}

// Current returns the timelock duration, in seconds, observed by the
// advisory read.
func (e TimelockNotZeroError) Current() uint64 {
	return e.current
}

func (e TimelockNotZeroError) Error() string {
	return fmt.Sprintf(
		"timelock duration is %d seconds, instant apply requires 0",
		e.current,
	)
}

// LedgerUnavailableError wraps a transport or confirmation failure. It is
// recoverable by caller retry; this client performs no retries itself.
type LedgerUnavailableError struct {
	op    string
	cause error
}

func NewLedgerUnavailableError(op string, cause error) LedgerUnavailableError {
	return LedgerUnavailableError{op: op, cause: cause}
}

// Op returns the gateway operation that failed ("call", "execute" or
// "batch").
func (e LedgerUnavailableError) Op() string {
	return e.op
}

func (e LedgerUnavailableError) Error() string {
	return fmt.Sprintf("ledger unavailable during %s: %v", e.op, e.cause)
}

func (e LedgerUnavailableError) Unwrap() error {
	return e.cause
}

// Is reports membership in the ErrLedgerUnavailable class.
func (e LedgerUnavailableError) Is(target error) bool {
	return target == ErrLedgerUnavailable
}
