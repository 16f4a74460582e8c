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
)

var maxRateSel = ledger.SelectorFromSignature("maxRate()")

// MaxRate manages the vault's execution-rate limit, a WAD-scaled
// per-second rate cap.
type MaxRate struct {
	config Config
}

func NewMaxRate(config Config) *MaxRate {
	return &MaxRate{config: config}
}

func (m *MaxRate) SubmitSetMaxRate(
	ctx context.Context,
	rate *big.Int,
) (*ledger.Receipt, error) {
	args, err := feeArgs(rate)
	if err != nil {
		return nil, err
	}
	return m.config.Coordinator.Submit(ctx, govfunc.SetMaxRate, args...)
}

func (m *MaxRate) SetMaxRateAfterTimelock(
	ctx context.Context,
	rate *big.Int,
) (*ledger.Receipt, error) {
	args, err := feeArgs(rate)
	if err != nil {
		return nil, err
	}
	return m.config.Coordinator.ExecuteMatured(ctx, govfunc.SetMaxRate, args...)
}

func (m *MaxRate) InstantSetMaxRate(
	ctx context.Context,
	rate *big.Int,
) (*ledger.Receipt, error) {
	args, err := feeArgs(rate)
	if err != nil {
		return nil, err
	}
	return m.config.Coordinator.InstantApply(ctx, govfunc.SetMaxRate, args...)
}

// MaxRate reads the current rate limit.
func (m *MaxRate) MaxRate(ctx context.Context) (*big.Int, error) {
	return callBig(ctx, m.config.Gateway, maxRateSel)
}
