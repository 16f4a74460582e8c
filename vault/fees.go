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

var (
	performanceFeeSel          = ledger.SelectorFromSignature("performanceFee()")
	managementFeeSel           = ledger.SelectorFromSignature("managementFee()")
	performanceFeeRecipientSel = ledger.SelectorFromSignature("performanceFeeRecipient()")
	managementFeeRecipientSel  = ledger.SelectorFromSignature("managementFeeRecipient()")
)

// Fees manages the vault's fee rates and recipients. Rates are WAD-scaled
// fixed-point integers per second.
type Fees struct {
	config Config
}

func NewFees(config Config) *Fees {
	return &Fees{config: config}
}

func feeArgs(rate *big.Int) ([]ledger.Word, error) {
	rateWord, err := ledger.BigWord(rate)
	if err != nil {
		return nil, err
	}
	return []ledger.Word{rateWord}, nil
}

func (f *Fees) SubmitSetPerformanceFee(
	ctx context.Context,
	rate *big.Int,
) (*ledger.Receipt, error) {
	args, err := feeArgs(rate)
	if err != nil {
		return nil, err
	}
	return f.config.Coordinator.Submit(ctx, govfunc.SetPerformanceFee, args...)
}

func (f *Fees) SetPerformanceFeeAfterTimelock(
	ctx context.Context,
	rate *big.Int,
) (*ledger.Receipt, error) {
	args, err := feeArgs(rate)
	if err != nil {
		return nil, err
	}
	return f.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.SetPerformanceFee,
		args...,
	)
}

func (f *Fees) InstantSetPerformanceFee(
	ctx context.Context,
	rate *big.Int,
) (*ledger.Receipt, error) {
	args, err := feeArgs(rate)
	if err != nil {
		return nil, err
	}
	return f.config.Coordinator.InstantApply(
		ctx,
		govfunc.SetPerformanceFee,
		args...,
	)
}

func (f *Fees) SubmitSetManagementFee(
	ctx context.Context,
	rate *big.Int,
) (*ledger.Receipt, error) {
	args, err := feeArgs(rate)
	if err != nil {
		return nil, err
	}
	return f.config.Coordinator.Submit(ctx, govfunc.SetManagementFee, args...)
}

func (f *Fees) SetManagementFeeAfterTimelock(
	ctx context.Context,
	rate *big.Int,
) (*ledger.Receipt, error) {
	args, err := feeArgs(rate)
	if err != nil {
		return nil, err
	}
	return f.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.SetManagementFee,
		args...,
	)
}

func (f *Fees) InstantSetManagementFee(
	ctx context.Context,
	rate *big.Int,
) (*ledger.Receipt, error) {
	args, err := feeArgs(rate)
	if err != nil {
		return nil, err
	}
	return f.config.Coordinator.InstantApply(
		ctx,
		govfunc.SetManagementFee,
		args...,
	)
}

func (f *Fees) SubmitSetPerformanceFeeRecipient(
	ctx context.Context,
	recipient common.Address,
) (*ledger.Receipt, error) {
	return f.config.Coordinator.Submit(
		ctx,
		govfunc.SetPerformanceFeeRecipient,
		ledger.AddressWord(recipient),
	)
}

func (f *Fees) SetPerformanceFeeRecipientAfterTimelock(
	ctx context.Context,
	recipient common.Address,
) (*ledger.Receipt, error) {
	return f.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.SetPerformanceFeeRecipient,
		ledger.AddressWord(recipient),
	)
}

func (f *Fees) InstantSetPerformanceFeeRecipient(
	ctx context.Context,
	recipient common.Address,
) (*ledger.Receipt, error) {
	return f.config.Coordinator.InstantApply(
		ctx,
		govfunc.SetPerformanceFeeRecipient,
		ledger.AddressWord(recipient),
	)
}

func (f *Fees) SubmitSetManagementFeeRecipient(
	ctx context.Context,
	recipient common.Address,
) (*ledger.Receipt, error) {
	return f.config.Coordinator.Submit(
		ctx,
		govfunc.SetManagementFeeRecipient,
		ledger.AddressWord(recipient),
	)
}

func (f *Fees) SetManagementFeeRecipientAfterTimelock(
	ctx context.Context,
	recipient common.Address,
) (*ledger.Receipt, error) {
	return f.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.SetManagementFeeRecipient,
		ledger.AddressWord(recipient),
	)
}

func (f *Fees) InstantSetManagementFeeRecipient(
	ctx context.Context,
	recipient common.Address,
) (*ledger.Receipt, error) {
	return f.config.Coordinator.InstantApply(
		ctx,
		govfunc.SetManagementFeeRecipient,
		ledger.AddressWord(recipient),
	)
}

func (f *Fees) PerformanceFee(ctx context.Context) (*big.Int, error) {
	return callBig(ctx, f.config.Gateway, performanceFeeSel)
}

func (f *Fees) ManagementFee(ctx context.Context) (*big.Int, error) {
	return callBig(ctx, f.config.Gateway, managementFeeSel)
}

func (f *Fees) PerformanceFeeRecipient(
	ctx context.Context,
) (common.Address, error) {
	return callAddress(ctx, f.config.Gateway, performanceFeeRecipientSel)
}

func (f *Fees) ManagementFeeRecipient(
	ctx context.Context,
) (common.Address, error) {
	return callAddress(ctx, f.config.Gateway, managementFeeRecipientSel)
}
