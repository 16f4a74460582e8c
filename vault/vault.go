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

// Package vault exposes the vault's configuration domains as thin,
// uniform call-sites over the proposal coordinator. Every governed setter
// follows the same three-entry-point pattern (SubmitX, XAfterTimelock,
// InstantSetX); domains carry no state and no safety logic of their own.
//
// All fee and rate values are fixed-point integers (WAD-scaled, 1e18)
// carried as *big.Int end-to-end; nothing on the encode path converts
// through floating point.
package vault

import (
	"context"
	"fmt"
	"math/big"

	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/blinklabs-io/paramlock/timelock"
	"github.com/ethereum/go-ethereum/common"
)

// Config carries the collaborators shared by every configuration domain.
type Config struct {
	Coordinator *timelock.Coordinator
	Gateway     ledger.Gateway
}

func callAddress(
	ctx context.Context,
	gw ledger.Gateway,
	sel ledger.Selector,
	args ...ledger.Word,
) (common.Address, error) {
	data, err := gw.Call(ctx, ledger.NewEncodedOp(sel, ledger.AppendWords(args...)))
	if err != nil {
		return common.Address{}, err
	}
	return ledger.WordToAddress(data)
}

func callBool(
	ctx context.Context,
	gw ledger.Gateway,
	sel ledger.Selector,
	args ...ledger.Word,
) (bool, error) {
	data, err := gw.Call(ctx, ledger.NewEncodedOp(sel, ledger.AppendWords(args...)))
	if err != nil {
		return false, err
	}
	return ledger.WordToBool(data)
}

func callBig(
	ctx context.Context,
	gw ledger.Gateway,
	sel ledger.Selector,
	args ...ledger.Word,
) (*big.Int, error) {
	data, err := gw.Call(ctx, ledger.NewEncodedOp(sel, ledger.AppendWords(args...)))
	if err != nil {
		return nil, err
	}
	return ledger.WordToBig(data)
}

// executeDirect sends an ungoverned vault call (tightening operations and
// owner role assignments that bypass the timelock protocol).
func executeDirect(
	ctx context.Context,
	gw ledger.Gateway,
	what string,
	sel ledger.Selector,
	args ...ledger.Word,
) (*ledger.Receipt, error) {
	receipt, err := gw.Execute(
		ctx,
		ledger.NewEncodedOp(sel, ledger.AppendWords(args...)),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return receipt, nil
}
