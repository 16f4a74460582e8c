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
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// WordSize is the size of one encoded argument word in bytes.
const WordSize = 32

// Word is one 32-byte argument word in the ledger's canonical argument
// encoding. All static argument types (addresses, booleans, unsigned
// integers, 32-byte identifiers, selectors) occupy exactly one word.
type Word [WordSize]byte

func (w Word) Bytes() []byte {
	return w[:]
}

// AddressWord encodes an address right-aligned in a word.
func AddressWord(addr common.Address) Word {
	var w Word
	copy(w[WordSize-common.AddressLength:], addr[:])
	return w
}

// BoolWord encodes a boolean as 0 or 1 right-aligned in a word.
func BoolWord(b bool) Word {
	var w Word
	if b {
		w[WordSize-1] = 1
	}
	return w
}

// Uint64Word encodes an unsigned integer right-aligned in a word.
func Uint64Word(v uint64) Word {
	var w Word
	binary.BigEndian.PutUint64(w[WordSize-8:], v)
	return w
}

// BigWord encodes an unsigned big integer right-aligned in a word. Values
// carried through this encoding are fixed-point integers (e.g. WAD-scaled
// rates); callers must never round-trip them through floating point. It
// fails with ErrValueOutOfRange for negative values or values wider than
// 256 bits.
func BigWord(v *big.Int) (Word, error) {
	var w Word
	if v == nil || v.Sign() < 0 || v.BitLen() > 256 {
		return w, ErrValueOutOfRange
	}
	v.FillBytes(w[:])
	return w, nil
}

// IDWord encodes a 32-byte identifier as a single word.
func IDWord(id [32]byte) Word {
	return Word(id)
}

// SelectorWord encodes a selector left-aligned in a word, matching the
// ledger's encoding for fixed-size byte arguments.
func SelectorWord(sel Selector) Word {
	var w Word
	copy(w[:SelectorSize], sel[:])
	return w
}

// AppendWords concatenates words into a flat argument byte string.
func AppendWords(words ...Word) []byte {
	out := make([]byte, 0, len(words)*WordSize)
	for _, w := range words {
		out = append(out, w[:]...)
	}
	return out
}

// WordToAddress decodes an address from a right-aligned word.
func WordToAddress(data []byte) (common.Address, error) {
	var addr common.Address
	if len(data) != WordSize {
		return addr, ErrMalformedOp
	}
	copy(addr[:], data[WordSize-common.AddressLength:])
	return addr, nil
}

// WordToBool decodes a boolean from a word. Any non-zero value is true.
func WordToBool(data []byte) (bool, error) {
	if len(data) != WordSize {
		return false, ErrMalformedOp
	}
	for _, b := range data {
		if b != 0 {
			return true, nil
		}
	}
	return false, nil
}

// WordToUint64 decodes an unsigned integer from a word. It fails with
// ErrValueOutOfRange if the value does not fit in 64 bits.
func WordToUint64(data []byte) (uint64, error) {
	if len(data) != WordSize {
		return 0, ErrMalformedOp
	}
	for _, b := range data[:WordSize-8] {
		if b != 0 {
			return 0, ErrValueOutOfRange
		}
	}
	return binary.BigEndian.Uint64(data[WordSize-8:]), nil
}

// WordToBig decodes an unsigned big integer from a word.
func WordToBig(data []byte) (*big.Int, error) {
	if len(data) != WordSize {
		return nil, ErrMalformedOp
	}
	return new(big.Int).SetBytes(data), nil
}

// padLength rounds a byte length up to a whole number of words.
func padLength(n int) int {
	if n%WordSize == 0 {
		return n
	}
	return n + WordSize - n%WordSize
}

// PackBytesArg encodes a call to a function taking a single dynamic bytes
// argument (the shape of the ledger's submit and revoke entry points and
// its maturity read accessor).
func PackBytesArg(sel Selector, data []byte) EncodedOp {
	args := make([]byte, 0, 2*WordSize+padLength(len(data)))
	args = append(args, Uint64Word(WordSize).Bytes()...)
	args = append(args, Uint64Word(uint64(len(data))).Bytes()...)
	args = append(args, data...)
	args = append(args, make([]byte, padLength(len(data))-len(data))...)
	return NewEncodedOp(sel, args)
}

// UnpackBytesArg decodes the dynamic bytes argument from argument bytes
// produced by PackBytesArg.
func UnpackBytesArg(args []byte) ([]byte, error) {
	if len(args) < 2*WordSize {
		return nil, ErrMalformedOp
	}
	offset, err := WordToUint64(args[:WordSize])
	if err != nil || offset != WordSize {
		return nil, ErrMalformedOp
	}
	length, err := WordToUint64(args[WordSize : 2*WordSize])
	if err != nil {
		return nil, ErrMalformedOp
	}
	// Compare against the remaining bytes rather than adding to the
	// length word, which can wrap for adversarial inputs.
	if length > uint64(len(args))-2*WordSize {
		return nil, ErrMalformedOp
	}
	out := make([]byte, length)
	copy(out, args[2*WordSize:2*WordSize+length])
	return out, nil
}

// PackBytesArrayArg encodes a call to a function taking a dynamic array of
// dynamic bytes (the shape of the ledger's atomic batch entry point).
func PackBytesArrayArg(sel Selector, items [][]byte) EncodedOp {
	count := len(items)
	// head: array offset, count, then one offset word per element
	head := make([]byte, 0, (2+count)*WordSize)
	head = append(head, Uint64Word(WordSize).Bytes()...)
	head = append(head, Uint64Word(uint64(count)).Bytes()...)
	var tail []byte
	elemOffset := count * WordSize
	for _, item := range items {
		head = append(head, Uint64Word(uint64(elemOffset)).Bytes()...)
		tail = append(tail, Uint64Word(uint64(len(item))).Bytes()...)
		tail = append(tail, item...)
		tail = append(tail, make([]byte, padLength(len(item))-len(item))...)
		elemOffset += WordSize + padLength(len(item))
	}
	return NewEncodedOp(sel, append(head, tail...))
}

// UnpackBytesArrayArg decodes the element byte strings from argument bytes
// produced by PackBytesArrayArg.
func UnpackBytesArrayArg(args []byte) ([][]byte, error) {
	if len(args) < 2*WordSize {
		return nil, ErrMalformedOp
	}
	offset, err := WordToUint64(args[:WordSize])
	if err != nil || offset != WordSize {
		return nil, ErrMalformedOp
	}
	count, err := WordToUint64(args[WordSize : 2*WordSize])
	if err != nil {
		return nil, ErrMalformedOp
	}
	arrayData := args[2*WordSize:]
	if count > uint64(len(arrayData))/WordSize {
		return nil, ErrMalformedOp
	}
	out := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		elemOffset, err := WordToUint64(
			arrayData[i*WordSize : (i+1)*WordSize],
		)
		if err != nil {
			return nil, ErrMalformedOp
		}
		if elemOffset > uint64(len(arrayData))-WordSize {
			return nil, ErrMalformedOp
		}
		length, err := WordToUint64(
			arrayData[elemOffset : elemOffset+WordSize],
		)
		if err != nil {
			return nil, ErrMalformedOp
		}
		start := elemOffset + WordSize
		if length > uint64(len(arrayData))-start {
			return nil, ErrMalformedOp
		}
		item := make([]byte, length)
		copy(item, arrayData[start:start+length])
		out = append(out, item)
	}
	return out, nil
}
