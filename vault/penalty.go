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
	"math/big"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/ethereum/go-ethereum/common"
)

var forceDeallocatePenaltySel = ledger.SelectorFromSignature(
	"forceDeallocatePenalty(address)",
)

// Penalties manages the per-adapter force-deallocate penalty, a
// WAD-scaled fraction charged when liquidity is forcibly pulled from an
// adapter.
type Penalties struct {
	config Config
}

func NewPenalties(config Config) *Penalties {
	return &Penalties{config: config}
}

func penaltyArgs(adapter common.Address, penalty *big.Int) ([]ledger.Word, error) {
	penaltyWord, err := ledger.BigWord(penalty)
	if err != nil {
		return nil, err
	}
	return []ledger.Word{ledger.AddressWord(adapter), penaltyWord}, nil
}

func (p *Penalties) SubmitSetForceDeallocatePenalty(
	ctx context.Context,
	adapter common.Address,
	penalty *big.Int,
) (*ledger.Receipt, error) {
	args, err := penaltyArgs(adapter, penalty)
	if err != nil {
		return nil, err
	}
	return p.config.Coordinator.Submit(
		ctx,
		govfunc.SetForceDeallocatePenalty,
		args...,
	)
}

func (p *Penalties) SetForceDeallocatePenaltyAfterTimelock(
	ctx context.Context,
	adapter common.Address,
	penalty *big.Int,
) (*ledger.Receipt, error) {
	args, err := penaltyArgs(adapter, penalty)
	if err != nil {
		return nil, err
	}
	return p.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.SetForceDeallocatePenalty,
		args...,
	)
}

func (p *Penalties) InstantSetForceDeallocatePenalty(
	ctx context.Context,
	adapter common.Address,
	penalty *big.Int,
) (*ledger.Receipt, error) {
	args, err := penaltyArgs(adapter, penalty)
	if err != nil {
		return nil, err
	}
	return p.config.Coordinator.InstantApply(
		ctx,
		govfunc.SetForceDeallocatePenalty,
		args...,
	)
}

// ForceDeallocatePenalty reads the current penalty for an adapter (zero
// when unset).
func (p *Penalties) ForceDeallocatePenalty(
	ctx context.Context,
	adapter common.Address,
) (*big.Int, error) {
	return callBig(
		ctx,
		p.config.Gateway,
		forceDeallocatePenaltySel,
		ledger.AddressWord(adapter),
	)
}
