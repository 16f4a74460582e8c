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
	"sort"
	"testing"

	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	f, err := Resolve("addAdapter")
	require.NoError(t, err)
	assert.Equal(t, AddAdapter, f)
	assert.Equal(t, "addAdapter(address)", f.Signature())
	assert.Equal(t, 1, f.NumArgs())
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("renounceOwnership")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFunction)
	var unknownErr UnknownFunctionError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "renounceOwnership", unknownErr.Name())
}

func TestFuncsClosedSet(t *testing.T) {
	funcs := Funcs()
	assert.Len(t, funcs, 19)
	assert.True(
		t,
		sort.SliceIsSorted(
			funcs,
			func(i, j int) bool { return funcs[i] < funcs[j] },
		),
	)
	for _, f := range funcs {
		assert.True(t, f.Valid())
		assert.NotEmpty(t, f.Signature())
		assert.Positive(t, f.NumArgs())
	}
	assert.False(t, Func("renounceOwnership").Valid())
}

func TestBySelectorRoundTrip(t *testing.T) {
	for _, f := range Funcs() {
		got, ok := BySelector(f.Selector())
		require.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok := BySelector(ledger.SelectorFromSignature("renounceOwnership()"))
	assert.False(t, ok)
}

func TestSelectorsUnique(t *testing.T) {
	seen := make(map[ledger.Selector]Func)
	for _, f := range Funcs() {
		prev, dup := seen[f.Selector()]
		require.False(t, dup, "selector collision between %s and %s", prev, f)
		seen[f.Selector()] = f
	}
}

func TestEncodeOp(t *testing.T) {
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	op, err := AddAdapter.EncodeOp(ledger.AddressWord(addr))
	require.NoError(t, err)
	assert.Equal(t, AddAdapter.Selector(), op.Selector())
	assert.Equal(t, ledger.AddressWord(addr).Bytes(), op.Args())
}

func TestEncodeOpDeterministicIdentity(t *testing.T) {
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	first, err := AddAdapter.EncodeOp(ledger.AddressWord(addr))
	require.NoError(t, err)
	second, err := AddAdapter.EncodeOp(ledger.AddressWord(addr))
	require.NoError(t, err)
	assert.Equal(t, first.Hash(), second.Hash())
	// Same argument to a different function is a different operation
	removed, err := RemoveAdapter.EncodeOp(ledger.AddressWord(addr))
	require.NoError(t, err)
	assert.NotEqual(t, first.Hash(), removed.Hash())
}

func TestEncodeOpArity(t *testing.T) {
	_, err := IncreaseTimelock.EncodeOp(
		ledger.SelectorWord(AddAdapter.Selector()),
	)
	require.Error(t, err)
	var arityErr ArgumentCountError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, IncreaseTimelock, arityErr.Func())
}

func TestEncodeOpUnknownFunc(t *testing.T) {
	_, err := Func("renounceOwnership").EncodeOp()
	assert.ErrorIs(t, err, ErrUnknownFunction)
}
