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

package evm

import (
	"errors"

	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	ErrNilBackend     = errors.New("evm gateway requires a backend")
	ErrNoVaultAddress = errors.New("evm gateway requires a vault address")
	// ErrNoSender is returned for state-mutating operations when no
	// transaction sender was configured (read-only gateway).
	ErrNoSender = errors.New("no transaction sender configured")
)

// The vault's custom error selectors, mapped onto the ledger error
// taxonomy. Like the function selectors, these must match the vault ABI
// byte-for-byte.
var revertErrors = map[ledger.Selector]error{
	ledger.SelectorFromSignature("Unauthorized()"):       ledger.ErrUnauthorized,
	ledger.SelectorFromSignature("TimelockNotExpired()"): ledger.ErrNotMatured,
	ledger.SelectorFromSignature("DataNotTimelocked()"):  ledger.ErrNoSuchProposal,
	ledger.SelectorFromSignature("SubmitAbdicated()"):    ledger.ErrSubmissionAbdicated,
}

// mapCallError translates an RPC failure into the ledger error taxonomy.
// Reverts carrying a known vault error selector map onto their taxonomy
// error; everything else is a transport failure the caller may retry.
func mapCallError(op string, err error) error {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data, ok := dataErr.ErrorData().(string); ok {
			if raw, decodeErr := hexutil.Decode(data); decodeErr == nil &&
				len(raw) >= ledger.SelectorSize {
				var sel ledger.Selector
				copy(sel[:], raw)
				if mapped, ok := revertErrors[sel]; ok {
					return mapped
				}
			}
		}
	}
	return ledger.NewLedgerUnavailableError(op, err)
}
