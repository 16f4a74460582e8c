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

package govfunc

import (
	"errors"
	"fmt"
)

// ErrUnknownFunction is the class marker for registry lookup misses.
// Match with errors.Is; the concrete error is an UnknownFunctionError
// carrying the rejected name.
var ErrUnknownFunction = errors.New("unknown governed function")

// UnknownFunctionError is returned for any function name outside the
// closed governed enumeration.
type UnknownFunctionError struct {
	name string
}

func NewUnknownFunctionError(name string) UnknownFunctionError {
	return UnknownFunctionError{name: name}
}

// Name returns the rejected function name.
func (e UnknownFunctionError) Name() string {
	return e.name
}

func (e UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown governed function %q", e.name)
}

func (e UnknownFunctionError) Is(target error) bool {
	return target == ErrUnknownFunction
}

// ArgumentCountError is returned when an operation is encoded with the
// wrong number of argument words for its function.
type ArgumentCountError struct {
	fn   Func
	want int
	got  int
}

func NewArgumentCountError(fn Func, want int, got int) ArgumentCountError {
	return ArgumentCountError{fn: fn, want: want, got: got}
}

func (e ArgumentCountError) Func() Func {
	return e.fn
}

func (e ArgumentCountError) Error() string {
	return fmt.Sprintf(
		"function %s takes %d argument words, got %d",
		e.fn,
		e.want,
		e.got,
	)
}
