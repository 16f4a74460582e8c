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
	"bytes"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
)

// SelectorSize is the size of a ledger function selector in bytes.
const SelectorSize = 4

// Selector is the fixed-size opaque identifier for a ledger function. The
// selector for a given function signature must match byte-for-byte between
// this client and the ledger: a mismatch silently targets the wrong
// function.
type Selector [SelectorSize]byte

// SelectorFromSignature derives the selector for a canonical function
// signature (e.g. "addAdapter(address)") as the first four bytes of its
// Keccak-256 hash.
func SelectorFromSignature(sig string) Selector {
	var sel Selector
	copy(sel[:], crypto.Keccak256([]byte(sig)))
	return sel
}

func (s Selector) Bytes() []byte {
	return s[:]
}

func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// OpHashSize is the size of an operation identity hash in bytes.
const OpHashSize = 32

// OpHash is the identity key for a proposal: the Keccak-256 hash of the
// full encoded operation.
type OpHash [OpHashSize]byte

func (h OpHash) Bytes() []byte {
	return h[:]
}

func (h OpHash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// EncodedOp is the canonical byte encoding of "apply function F with
// arguments A": the function selector followed by the encoded argument
// words. Two EncodedOps are equal iff F and A are equal, which makes the
// encoding the identity key for a proposal.
type EncodedOp struct {
	data []byte
}

// NewEncodedOp builds an EncodedOp from a selector and pre-encoded
// argument bytes.
func NewEncodedOp(sel Selector, args []byte) EncodedOp {
	data := make([]byte, 0, SelectorSize+len(args))
	data = append(data, sel[:]...)
	data = append(data, args...)
	return EncodedOp{data: data}
}

// EncodedOpFromBytes wraps raw calldata as an EncodedOp. It fails with
// ErrMalformedOp if the data is too short to contain a selector.
func EncodedOpFromBytes(data []byte) (EncodedOp, error) {
	if len(data) < SelectorSize {
		return EncodedOp{}, ErrMalformedOp
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return EncodedOp{data: buf}, nil
}

// Selector returns the function selector portion of the operation.
func (op EncodedOp) Selector() Selector {
	var sel Selector
	copy(sel[:], op.data)
	return sel
}

// Args returns the encoded argument bytes following the selector.
func (op EncodedOp) Args() []byte {
	if len(op.data) <= SelectorSize {
		return nil
	}
	return op.data[SelectorSize:]
}

// Bytes returns the full canonical encoding (selector plus arguments).
func (op EncodedOp) Bytes() []byte {
	return op.data
}

// Hash returns the operation identity hash.
func (op EncodedOp) Hash() OpHash {
	var h OpHash
	copy(h[:], crypto.Keccak256(op.data))
	return h
}

// Equal reports whether two operations encode the same function and
// arguments.
func (op EncodedOp) Equal(other EncodedOp) bool {
	return bytes.Equal(op.data, other.data)
}

func (op EncodedOp) String() string {
	return "0x" + hex.EncodeToString(op.data)
}
