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

// Package govfunc defines the closed set of governed vault functions and
// their wire selectors. The set is fixed at design time: every mutable
// vault parameter is changed through exactly one of these functions, and
// each selector must match the ledger byte-for-byte.
package govfunc

import (
	"sort"

	"github.com/blinklabs-io/paramlock/ledger"
)

// Func identifies one governed vault function.
type Func string

const (
	AddAdapter                Func = "addAdapter"
	RemoveAdapter             Func = "removeAdapter"
	IncreaseTimelock          Func = "increaseTimelock"
	DecreaseTimelock          Func = "decreaseTimelock"
	IncreaseAbsoluteCap       Func = "increaseAbsoluteCap"
	IncreaseRelativeCap       Func = "increaseRelativeCap"
	SetIsAllocator            Func = "setIsAllocator"
	SetAdapterRegistry        Func = "setAdapterRegistry"
	SetReceiveSharesGate      Func = "setReceiveSharesGate"
	SetSendSharesGate         Func = "setSendSharesGate"
	SetReceiveAssetsGate      Func = "setReceiveAssetsGate"
	SetSendAssetsGate         Func = "setSendAssetsGate"
	SetPerformanceFee         Func = "setPerformanceFee"
	SetManagementFee          Func = "setManagementFee"
	SetPerformanceFeeRecipient Func = "setPerformanceFeeRecipient"
	SetManagementFeeRecipient  Func = "setManagementFeeRecipient"
	SetForceDeallocatePenalty  Func = "setForceDeallocatePenalty"
	SetMaxRate                 Func = "setMaxRate"
	AbdicateSubmit             Func = "abdicateSubmit"
)

// funcSpec carries the per-function wire contract.
type funcSpec struct {
	signature string
	selector  ledger.Selector
	numArgs   int
}

// funcSpecs is the full wire contract for the governed function set.
// Selectors are derived from the canonical signatures at init so they can
// never drift from the signature strings.
var funcSpecs = map[Func]*funcSpec{
	AddAdapter:                 {signature: "addAdapter(address)", numArgs: 1},
	RemoveAdapter:              {signature: "removeAdapter(address)", numArgs: 1},
	IncreaseTimelock:           {signature: "increaseTimelock(bytes4,uint256)", numArgs: 2},
	DecreaseTimelock:           {signature: "decreaseTimelock(bytes4,uint256)", numArgs: 2},
	IncreaseAbsoluteCap:        {signature: "increaseAbsoluteCap(bytes32,uint256)", numArgs: 2},
	IncreaseRelativeCap:        {signature: "increaseRelativeCap(bytes32,uint256)", numArgs: 2},
	SetIsAllocator:             {signature: "setIsAllocator(address,bool)", numArgs: 2},
	SetAdapterRegistry:         {signature: "setAdapterRegistry(address)", numArgs: 1},
	SetReceiveSharesGate:       {signature: "setReceiveSharesGate(address)", numArgs: 1},
	SetSendSharesGate:          {signature: "setSendSharesGate(address)", numArgs: 1},
	SetReceiveAssetsGate:       {signature: "setReceiveAssetsGate(address)", numArgs: 1},
	SetSendAssetsGate:          {signature: "setSendAssetsGate(address)", numArgs: 1},
	SetPerformanceFee:          {signature: "setPerformanceFee(uint256)", numArgs: 1},
	SetManagementFee:           {signature: "setManagementFee(uint256)", numArgs: 1},
	SetPerformanceFeeRecipient: {signature: "setPerformanceFeeRecipient(address)", numArgs: 1},
	SetManagementFeeRecipient:  {signature: "setManagementFeeRecipient(address)", numArgs: 1},
	SetForceDeallocatePenalty:  {signature: "setForceDeallocatePenalty(address,uint256)", numArgs: 2},
	SetMaxRate:                 {signature: "setMaxRate(uint256)", numArgs: 1},
	AbdicateSubmit:             {signature: "abdicateSubmit(bytes4)", numArgs: 1},
}

var selectorIndex = map[ledger.Selector]Func{}

func init() {
	for f, spec := range funcSpecs {
		spec.selector = ledger.SelectorFromSignature(spec.signature)
		selectorIndex[spec.selector] = f
	}
	if len(selectorIndex) != len(funcSpecs) {
		panic("governed function selector collision")
	}
}

// Resolve maps a function name to its member of the closed enumeration.
// It fails with an UnknownFunctionError for any name outside the set.
func Resolve(name string) (Func, error) {
	f := Func(name)
	if _, ok := funcSpecs[f]; !ok {
		return "", NewUnknownFunctionError(name)
	}
	return f, nil
}

// BySelector maps a wire selector back to its governed function. The
// second return is false for selectors outside the governed set.
func BySelector(sel ledger.Selector) (Func, bool) {
	f, ok := selectorIndex[sel]
	return f, ok
}

// Funcs returns every member of the closed enumeration, sorted by name.
func Funcs() []Func {
	out := make([]Func, 0, len(funcSpecs))
	for f := range funcSpecs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid reports whether f is a member of the closed enumeration.
func (f Func) Valid() bool {
	_, ok := funcSpecs[f]
	return ok
}

// Name returns the function name.
func (f Func) Name() string {
	return string(f)
}

// Signature returns the canonical signature the selector is derived from.
func (f Func) Signature() string {
	spec, ok := funcSpecs[f]
	if !ok {
		return ""
	}
	return spec.signature
}

// Selector returns the wire selector for the function.
func (f Func) Selector() ledger.Selector {
	spec, ok := funcSpecs[f]
	if !ok {
		return ledger.Selector{}
	}
	return spec.selector
}

// NumArgs returns the number of argument words the function takes.
func (f Func) NumArgs() int {
	spec, ok := funcSpecs[f]
	if !ok {
		return 0
	}
	return spec.numArgs
}

// EncodeOp builds the canonical encoded operation for invoking f with the
// given argument words. It fails with an UnknownFunctionError for
// functions outside the enumeration and an ArgumentCountError on arity
// mismatch.
func (f Func) EncodeOp(args ...ledger.Word) (ledger.EncodedOp, error) {
	spec, ok := funcSpecs[f]
	if !ok {
		return ledger.EncodedOp{}, NewUnknownFunctionError(string(f))
	}
	if len(args) != spec.numArgs {
		return ledger.EncodedOp{}, NewArgumentCountError(
			f,
			spec.numArgs,
			len(args),
		)
	}
	return ledger.NewEncodedOp(spec.selector, ledger.AppendWords(args...)), nil
}
