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
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// ReceiptStatus describes the confirmation state of a submitted ledger
// operation.
type ReceiptStatus string

const (
	ReceiptStatusPending   ReceiptStatus = "pending"
	ReceiptStatusConfirmed ReceiptStatus = "confirmed"
	ReceiptStatusReverted  ReceiptStatus = "reverted"
)

// Receipt is the handle for a state-mutating ledger operation. A pending
// receipt may later resolve to confirmed or reverted; confirmation is
// owned by the ledger, not by this client.
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	Status      ReceiptStatus
}

// Confirmed returns true once the ledger has applied the operation.
func (r *Receipt) Confirmed() bool {
	return r != nil && r.Status == ReceiptStatusConfirmed
}

// Gateway is the contract between this client and the ledger hosting the
// vault. The ledger is the single serializing authority for all proposal
// state transitions: implementations must not cache state across calls,
// and every read is potentially stale the instant it returns.
type Gateway interface {
	// Call performs a read-only call against current ledger state.
	Call(ctx context.Context, op EncodedOp) ([]byte, error)
	// Execute sends a single state-mutating operation.
	Execute(ctx context.Context, op EncodedOp) (*Receipt, error)
	// Batch sends the listed operations as one atomic unit. The ledger
	// guarantees all-or-nothing application: if any operation fails, no
	// operation in the batch is applied.
	Batch(ctx context.Context, ops []EncodedOp) (*Receipt, error)
}
