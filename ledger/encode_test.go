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
	"math"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressWordRoundTrip(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000DeaDBeef")
	word := AddressWord(addr)
	// Address sits right-aligned with twelve leading zero bytes
	for i := range WordSize - common.AddressLength {
		assert.Zero(t, word[i])
	}
	decoded, err := WordToAddress(word.Bytes())
	require.NoError(t, err)
	assert.Equal(t, addr, decoded)
}

func TestBoolWord(t *testing.T) {
	truthy, err := WordToBool(BoolWord(true).Bytes())
	require.NoError(t, err)
	assert.True(t, truthy)
	falsy, err := WordToBool(BoolWord(false).Bytes())
	require.NoError(t, err)
	assert.False(t, falsy)
}

func TestUint64WordRoundTrip(t *testing.T) {
	v, err := WordToUint64(Uint64Word(86400).Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint64(86400), v)
}

func TestWordToUint64Overflow(t *testing.T) {
	var w Word
	w[0] = 1 // bit 255 set, cannot fit in 64 bits
	_, err := WordToUint64(w.Bytes())
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestBigWord(t *testing.T) {
	// WAD-scaled 5% rate
	rate, ok := new(big.Int).SetString("50000000000000000", 10)
	require.True(t, ok)
	word, err := BigWord(rate)
	require.NoError(t, err)
	decoded, err := WordToBig(word.Bytes())
	require.NoError(t, err)
	assert.Zero(t, rate.Cmp(decoded))
}

func TestBigWordRejectsBadValues(t *testing.T) {
	_, err := BigWord(nil)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = BigWord(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	tooWide := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = BigWord(tooWide)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestSelectorWordLeftAligned(t *testing.T) {
	sel := SelectorFromSignature("submit(bytes)")
	word := SelectorWord(sel)
	assert.Equal(t, sel[:], word[:SelectorSize])
	for _, b := range word[SelectorSize:] {
		assert.Zero(t, b)
	}
}

func TestPackBytesArgRoundTrip(t *testing.T) {
	sel := SelectorFromSignature("submit(bytes)")
	// Inner payload deliberately not word-aligned
	inner := []byte{0xde, 0xad, 0xbe, 0xef, 0x01}
	op := PackBytesArg(sel, inner)
	assert.Equal(t, sel, op.Selector())
	// offset word + length word + one padded data word
	assert.Len(t, op.Args(), 3*WordSize)
	decoded, err := UnpackBytesArg(op.Args())
	require.NoError(t, err)
	assert.Equal(t, inner, decoded)
}

func TestUnpackBytesArgRejectsTruncated(t *testing.T) {
	_, err := UnpackBytesArg([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrMalformedOp)
	// Valid head claiming more data than present
	args := AppendWords(Uint64Word(WordSize), Uint64Word(1000))
	_, err = UnpackBytesArg(args)
	assert.ErrorIs(t, err, ErrMalformedOp)
}

func TestUnpackBytesArgRejectsHugeLength(t *testing.T) {
	// A length word near the uint64 ceiling must not wrap the bounds
	// arithmetic into an allocation or slice panic
	args := AppendWords(Uint64Word(WordSize), Uint64Word(math.MaxUint64-WordSize))
	_, err := UnpackBytesArg(args)
	assert.ErrorIs(t, err, ErrMalformedOp)
}

func TestPackBytesArrayArgRoundTrip(t *testing.T) {
	sel := SelectorFromSignature("multicall(bytes[])")
	items := [][]byte{
		{0x01, 0x02, 0x03, 0x04, 0x05},
		{0xaa},
		make([]byte, 2*WordSize), // already aligned
	}
	op := PackBytesArrayArg(sel, items)
	assert.Equal(t, sel, op.Selector())
	decoded, err := UnpackBytesArrayArg(op.Args())
	require.NoError(t, err)
	require.Len(t, decoded, len(items))
	for i := range items {
		assert.Equal(t, items[i], decoded[i])
	}
}

func TestPackBytesArrayArgEmpty(t *testing.T) {
	op := PackBytesArrayArg(MulticallSelector, nil)
	decoded, err := UnpackBytesArrayArg(op.Args())
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestUnpackBytesArrayArgRejectsHugeWords(t *testing.T) {
	// Element count near the uint64 ceiling
	args := AppendWords(Uint64Word(WordSize), Uint64Word(math.MaxUint64/WordSize+1))
	_, err := UnpackBytesArrayArg(args)
	assert.ErrorIs(t, err, ErrMalformedOp)

	// Element offset word that would wrap when the length word is added
	args = AppendWords(
		Uint64Word(WordSize),
		Uint64Word(1),
		Uint64Word(math.MaxUint64-WordSize+1),
	)
	_, err = UnpackBytesArrayArg(args)
	assert.ErrorIs(t, err, ErrMalformedOp)

	// Valid offset but element length near the uint64 ceiling
	args = AppendWords(
		Uint64Word(WordSize),
		Uint64Word(1),
		Uint64Word(WordSize),
		Uint64Word(math.MaxUint64-2*WordSize),
	)
	_, err = UnpackBytesArrayArg(args)
	assert.ErrorIs(t, err, ErrMalformedOp)
}
