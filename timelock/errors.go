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

package timelock

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
)

var (
	ErrNilGateway = errors.New("coordinator requires a ledger gateway")
	// ErrInstantDecreaseForbidden is returned for any attempt to apply a
	// timelock decrease instantly, regardless of the current duration.
	ErrInstantDecreaseForbidden = errors.New(
		"timelock decreases have no instant path",
	)
)

// OperationError tags a failure with the coordinator operation, the
// governed function and the operation identity it was acting on. The
// underlying cause (ledger error taxonomy, encoding failure) is preserved
// for errors.Is / errors.As matching.
type OperationError struct {
	op     string
	fn     govfunc.Func
	opHash ledger.OpHash
	cause  error
}

func NewOperationError(
	op string,
	fn govfunc.Func,
	opHash ledger.OpHash,
	cause error,
) OperationError {
	return OperationError{op: op, fn: fn, opHash: opHash, cause: cause}
}

// Op returns the coordinator operation that failed ("submit", "execute",
// "instant", "revoke", "maturity" or "duration").
func (e OperationError) Op() string {
	return e.op
}

// Func returns the governed function the operation targeted.
func (e OperationError) Func() govfunc.Func {
	return e.fn
}

// OpHash returns the identity of the encoded operation.
func (e OperationError) OpHash() ledger.OpHash {
	return e.opHash
}

func (e OperationError) Error() string {
	return fmt.Sprintf(
		"%s %s (op %s): %v",
		e.op,
		e.fn,
		e.opHash,
		e.cause,
	)
}

func (e OperationError) Unwrap() error {
	return e.cause
}
