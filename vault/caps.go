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

var (
	absoluteCapSel         = ledger.SelectorFromSignature("absoluteCap(bytes32)")
	relativeCapSel         = ledger.SelectorFromSignature("relativeCap(bytes32)")
	decreaseAbsoluteCapSel = ledger.SelectorFromSignature("decreaseAbsoluteCap(bytes32,uint256)")
	decreaseRelativeCapSel = ledger.SelectorFromSignature("decreaseRelativeCap(bytes32,uint256)")
)

// Caps manages the vault's per-identifier exposure caps. Identifiers are
// opaque 32-byte keys; absolute caps are asset amounts, relative caps are
// WAD-scaled fractions of total assets. Increases are timelocked;
// decreases tighten exposure and apply directly without a proposal.
type Caps struct {
	config Config
}

func NewCaps(config Config) *Caps {
	return &Caps{config: config}
}

func capArgs(id [32]byte, newCap *big.Int) ([]ledger.Word, error) {
	capWord, err := ledger.BigWord(newCap)
	if err != nil {
		return nil, err
	}
	return []ledger.Word{ledger.IDWord(id), capWord}, nil
}

func (c *Caps) SubmitIncreaseAbsoluteCap(
	ctx context.Context,
	id [32]byte,
	newCap *big.Int,
) (*ledger.Receipt, error) {
	args, err := capArgs(id, newCap)
	if err != nil {
		return nil, err
	}
	return c.config.Coordinator.Submit(ctx, govfunc.IncreaseAbsoluteCap, args...)
}

func (c *Caps) IncreaseAbsoluteCapAfterTimelock(
	ctx context.Context,
	id [32]byte,
	newCap *big.Int,
) (*ledger.Receipt, error) {
	args, err := capArgs(id, newCap)
	if err != nil {
		return nil, err
	}
	return c.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.IncreaseAbsoluteCap,
		args...,
	)
}

func (c *Caps) InstantIncreaseAbsoluteCap(
	ctx context.Context,
	id [32]byte,
	newCap *big.Int,
) (*ledger.Receipt, error) {
	args, err := capArgs(id, newCap)
	if err != nil {
		return nil, err
	}
	return c.config.Coordinator.InstantApply(
		ctx,
		govfunc.IncreaseAbsoluteCap,
		args...,
	)
}

func (c *Caps) SubmitIncreaseRelativeCap(
	ctx context.Context,
	id [32]byte,
	newCap *big.Int,
) (*ledger.Receipt, error) {
	args, err := capArgs(id, newCap)
	if err != nil {
		return nil, err
	}
	return c.config.Coordinator.Submit(ctx, govfunc.IncreaseRelativeCap, args...)
}

func (c *Caps) IncreaseRelativeCapAfterTimelock(
	ctx context.Context,
	id [32]byte,
	newCap *big.Int,
) (*ledger.Receipt, error) {
	args, err := capArgs(id, newCap)
	if err != nil {
		return nil, err
	}
	return c.config.Coordinator.ExecuteMatured(
		ctx,
		govfunc.IncreaseRelativeCap,
		args...,
	)
}

func (c *Caps) InstantIncreaseRelativeCap(
	ctx context.Context,
	id [32]byte,
	newCap *big.Int,
) (*ledger.Receipt, error) {
	args, err := capArgs(id, newCap)
	if err != nil {
		return nil, err
	}
	return c.config.Coordinator.InstantApply(
		ctx,
		govfunc.IncreaseRelativeCap,
		args...,
	)
}

// DecreaseAbsoluteCap lowers an exposure cap directly. Tightening is not
// timelocked.
func (c *Caps) DecreaseAbsoluteCap(
	ctx context.Context,
	id [32]byte,
	newCap *big.Int,
) (*ledger.Receipt, error) {
	args, err := capArgs(id, newCap)
	if err != nil {
		return nil, err
	}
	return executeDirect(
		ctx,
		c.config.Gateway,
		"decrease absolute cap",
		decreaseAbsoluteCapSel,
		args...,
	)
}

// DecreaseRelativeCap lowers a relative exposure cap directly. Tightening
// is not timelocked.
func (c *Caps) DecreaseRelativeCap(
	ctx context.Context,
	id [32]byte,
	newCap *big.Int,
) (*ledger.Receipt, error) {
	args, err := capArgs(id, newCap)
	if err != nil {
		return nil, err
	}
	return executeDirect(
		ctx,
		c.config.Gateway,
		"decrease relative cap",
		decreaseRelativeCapSel,
		args...,
	)
}

// AbsoluteCap reads the current absolute cap for an identifier (zero when
// unset).
func (c *Caps) AbsoluteCap(
	ctx context.Context,
	id [32]byte,
) (*big.Int, error) {
	return callBig(ctx, c.config.Gateway, absoluteCapSel, ledger.IDWord(id))
}

// RelativeCap reads the current relative cap for an identifier (zero when
// unset).
func (c *Caps) RelativeCap(
	ctx context.Context,
	id [32]byte,
) (*big.Int, error) {
	return callBig(ctx, c.config.Gateway, relativeCapSel, ledger.IDWord(id))
}
