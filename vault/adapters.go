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

package vault

import (
	"context"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/ethereum/go-ethereum/common"
)

var isAdapterSel = ledger.SelectorFromSignature("isAdapter(address)")

// Adapters manages which external strategy adapters the vault trusts.
type Adapters struct {
	config Config
}

func NewAdapters(config Config) *Adapters {
	return &Adapters{config: config}
}

func (a *Adapters) SubmitAddAdapter(
	ctx context.Context,
	adapter common.Address,
) (*ledger.Receipt, error) {
	return a.config.Coordinator.Submit(
		ctx,
		govfunc.AddAdapter,
		ledger.AddressWord(adapter),
	)
}

func (a *Adapters) AddAdapterAfterTimelock(
	ctx context.Context,
	adapter common.Address,
) (*ledger.Receipt, error) {
	return a.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.AddAdapter,
		ledger.AddressWord(adapter),
	)
}

func (a *Adapters) InstantAddAdapter(
	ctx context.Context,
	adapter common.Address,
) (*ledger.Receipt, error) {
	return a.config.Coordinator.InstantApply(
		ctx,
		govfunc.AddAdapter,
		ledger.AddressWord(adapter),
	)
}

func (a *Adapters) SubmitRemoveAdapter(
	ctx context.Context,
	adapter common.Address,
) (*ledger.Receipt, error) {
	return a.config.Coordinator.Submit(
		ctx,
		govfunc.RemoveAdapter,
		ledger.AddressWord(adapter),
	)
}

func (a *Adapters) RemoveAdapterAfterTimelock(
	ctx context.Context,
	adapter common.Address,
) (*ledger.Receipt, error) {
	return a.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.RemoveAdapter,
		ledger.AddressWord(adapter),
	)
}

func (a *Adapters) InstantRemoveAdapter(
	ctx context.Context,
	adapter common.Address,
) (*ledger.Receipt, error) {
	return a.config.Coordinator.InstantApply(
		ctx,
		govfunc.RemoveAdapter,
		ledger.AddressWord(adapter),
	)
}

// IsAdapter reads whether the vault currently trusts the adapter.
func (a *Adapters) IsAdapter(
	ctx context.Context,
	adapter common.Address,
) (bool, error) {
	return callBool(
		ctx,
		a.config.Gateway,
		isAdapterSel,
		ledger.AddressWord(adapter),
	)
}
