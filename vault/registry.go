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

var adapterRegistrySel = ledger.SelectorFromSignature("adapterRegistry()")

// AdapterRegistry manages the external registry contract the vault
// validates adapters against. The zero address disables registry checks.
type AdapterRegistry struct {
	config Config
}

func NewAdapterRegistry(config Config) *AdapterRegistry {
	return &AdapterRegistry{config: config}
}

func (r *AdapterRegistry) SubmitSetAdapterRegistry(
	ctx context.Context,
	registry common.Address,
) (*ledger.Receipt, error) {
	return r.config.Coordinator.Submit(
		ctx,
		govfunc.SetAdapterRegistry,
		ledger.AddressWord(registry),
	)
}

func (r *AdapterRegistry) SetAdapterRegistryAfterTimelock(
	ctx context.Context,
	registry common.Address,
) (*ledger.Receipt, error) {
	return r.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.SetAdapterRegistry,
		ledger.AddressWord(registry),
	)
}

func (r *AdapterRegistry) InstantSetAdapterRegistry(
	ctx context.Context,
	registry common.Address,
) (*ledger.Receipt, error) {
	return r.config.Coordinator.InstantApply(
		ctx,
		govfunc.SetAdapterRegistry,
		ledger.AddressWord(registry),
	)
}

// AdapterRegistry reads the current registry contract address.
func (r *AdapterRegistry) AdapterRegistry(
	ctx context.Context,
) (common.Address, error) {
	return callAddress(ctx, r.config.Gateway, adapterRegistrySel)
}
