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
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

// argTypes extracts the parameter type list from a canonical signature
// like "increaseTimelock(bytes4,uint256)".
func argTypes(signature string) []string {
	open := strings.IndexByte(signature, '(')
	inner := strings.TrimSuffix(signature[open+1:], ")")
	if inner == "" {
		return nil
	}
	return strings.Split(inner, ",")
}

func parseArgWord(argType string, value string) (ledger.Word, error) {
	switch argType {
	case "address":
		if !common.IsHexAddress(value) {
			return ledger.Word{}, fmt.Errorf("invalid address: %q", value)
		}
		return ledger.AddressWord(common.HexToAddress(value)), nil
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return ledger.Word{}, fmt.Errorf("invalid bool: %q", value)
		}
		return ledger.BoolWord(b), nil
	case "uint256":
		v, ok := new(big.Int).SetString(value, 0)
		if !ok {
			return ledger.Word{}, fmt.Errorf("invalid uint256: %q", value)
		}
		return ledger.BigWord(v)
	case "bytes32":
		raw, err := hexutil.Decode(value)
		if err != nil || len(raw) != 32 {
			return ledger.Word{}, fmt.Errorf("invalid bytes32: %q", value)
		}
		var id [32]byte
		copy(id[:], raw)
		return ledger.IDWord(id), nil
	case "bytes4":
		// Accept either a governed function name or a raw selector
		if f, err := govfunc.Resolve(value); err == nil {
			return ledger.SelectorWord(f.Selector()), nil
		}
		raw, err := hexutil.Decode(value)
		if err != nil || len(raw) != ledger.SelectorSize {
			return ledger.Word{}, fmt.Errorf("invalid selector: %q", value)
		}
		var sel ledger.Selector
		copy(sel[:], raw)
		return ledger.SelectorWord(sel), nil
	default:
		return ledger.Word{}, fmt.Errorf("unsupported argument type: %q", argType)
	}
}

// parseArgs converts string arguments into encoded words per the
// function's canonical signature.
func parseArgs(f govfunc.Func, rawArgs []string) ([]ledger.Word, error) {
	types := argTypes(f.Signature())
	if len(rawArgs) != len(types) {
		return nil, fmt.Errorf(
			"%s takes %d arguments (%s), got %d",
			f.Name(),
			len(types),
			strings.Join(types, ","),
			len(rawArgs),
		)
	}
	words := make([]ledger.Word, 0, len(types))
	for i, argType := range types {
		word, err := parseArgWord(argType, rawArgs[i])
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}

// parseOp resolves a function name and its string arguments into the
// canonical encoded operation.
func parseOp(name string, rawArgs []string) (govfunc.Func, ledger.EncodedOp, error) {
	f, err := govfunc.Resolve(name)
	if err != nil {
		return "", ledger.EncodedOp{}, err
	}
	words, err := parseArgs(f, rawArgs)
	if err != nil {
		return "", ledger.EncodedOp{}, err
	}
	op, err := f.EncodeOp(words...)
	if err != nil {
		return "", ledger.EncodedOp{}, err
	}
	return f, op, nil
}

func calldataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calldata <function> [args...]",
		Short: "Render submit, execute and revoke calldata for external signing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, op, err := parseOp(args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Printf("op hash: %s\n", op.Hash())
			fmt.Printf("submit:  %s\n", ledger.PackBytesArg(ledger.SubmitSelector, op.Bytes()))
			fmt.Printf("execute: %s\n", op)
			fmt.Printf("revoke:  %s\n", ledger.PackBytesArg(ledger.RevokeSelector, op.Bytes()))
			return nil
		},
	}
}
