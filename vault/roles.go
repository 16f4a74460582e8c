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

var (
	isAllocatorSel = ledger.SelectorFromSignature("isAllocator(address)")
	isSentinelSel  = ledger.SelectorFromSignature("isSentinel(address)")
	ownerSel       = ledger.SelectorFromSignature("owner()")
	curatorSel     = ledger.SelectorFromSignature("curator()")
	setIsSentinelSel = ledger.SelectorFromSignature("setIsSentinel(address,bool)")
	setCuratorSel    = ledger.SelectorFromSignature("setCurator(address)")
	setOwnerSel      = ledger.SelectorFromSignature("setOwner(address)")
)

// Roles manages the vault's role assignments. Only the allocator role is
// timelocked; owner, curator and sentinel assignments are direct owner
// operations outside the proposal protocol.
type Roles struct {
	config Config
}

func NewRoles(config Config) *Roles {
	return &Roles{config: config}
}

func (r *Roles) SubmitSetIsAllocator(
	ctx context.Context,
	addr common.Address,
	isAllocator bool,
) (*ledger.Receipt, error) {
	return r.config.Coordinator.Submit(
		ctx,
		govfunc.SetIsAllocator,
		ledger.AddressWord(addr),
		ledger.BoolWord(isAllocator),
	)
}

func (r *Roles) SetIsAllocatorAfterTimelock(
	ctx context.Context,
	addr common.Address,
	isAllocator bool,
) (*ledger.Receipt, error) {
	return r.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.SetIsAllocator,
		ledger.AddressWord(addr),
		ledger.BoolWord(isAllocator),
	)
}

func (r *Roles) InstantSetIsAllocator(
	ctx context.Context,
	addr common.Address,
	isAllocator bool,
) (*ledger.Receipt, error) {
	return r.config.Coordinator.InstantApply(
		ctx,
		govfunc.SetIsAllocator,
		ledger.AddressWord(addr),
		ledger.BoolWord(isAllocator),
	)
}

// SetIsSentinel assigns or removes the sentinel role directly.
func (r *Roles) SetIsSentinel(
	ctx context.Context,
	addr common.Address,
	isSentinel bool,
) (*ledger.Receipt, error) {
	return executeDirect(
		ctx,
		r.config.Gateway,
		"set sentinel",
		setIsSentinelSel,
		ledger.AddressWord(addr),
		ledger.BoolWord(isSentinel),
	)
}

// SetCurator assigns the curator role directly.
func (r *Roles) SetCurator(
	ctx context.Context,
	addr common.Address,
) (*ledger.Receipt, error) {
	return executeDirect(
		ctx,
		r.config.Gateway,
		"set curator",
		setCuratorSel,
		ledger.AddressWord(addr),
	)
}

// SetOwner transfers vault ownership directly.
func (r *Roles) SetOwner(
	ctx context.Context,
	addr common.Address,
) (*ledger.Receipt, error) {
	return executeDirect(
		ctx,
		r.config.Gateway,
		"set owner",
		setOwnerSel,
		ledger.AddressWord(addr),
	)
}

func (r *Roles) IsAllocator(
	ctx context.Context,
	addr common.Address,
) (bool, error) {
	return callBool(
		ctx,
		r.config.Gateway,
		isAllocatorSel,
		ledger.AddressWord(addr),
	)
}

func (r *Roles) IsSentinel(
	ctx context.Context,
	addr common.Address,
) (bool, error) {
	return callBool(
		ctx,
		r.config.Gateway,
		isSentinelSel,
		ledger.AddressWord(addr),
	)
}

func (r *Roles) Owner(ctx context.Context) (common.Address, error) {
	return callAddress(ctx, r.config.Gateway, ownerSel)
}

func (r *Roles) Curator(ctx context.Context) (common.Address, error) {
	return callAddress(ctx, r.config.Gateway, curatorSel)
}
