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

// The vault's protocol entry points. Together with the governed function
// set these are the only ledger functions this client relies on; the
// signatures are the wire contract and must match the vault byte-for-byte.
var (
	// SubmitSelector wraps an encoded governed operation into a pending
	// proposal.
	SubmitSelector = SelectorFromSignature("submit(bytes)")
	// RevokeSelector discards the pending proposal for an encoded
	// governed operation.
	RevokeSelector = SelectorFromSignature("revoke(bytes)")
	// MulticallSelector applies a list of encoded operations as one
	// atomic all-or-nothing unit.
	MulticallSelector = SelectorFromSignature("multicall(bytes[])")
	// TimelockSelector reads the current timelock duration for a governed
	// function selector.
	TimelockSelector = SelectorFromSignature("timelock(bytes4)")
	// ExecutableAtSelector reads the registered maturity timestamp for an
	// encoded governed operation (zero when no proposal exists).
	ExecutableAtSelector = SelectorFromSignature("executableAt(bytes)")
)
