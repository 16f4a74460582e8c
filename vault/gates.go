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
	"errors"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/ethereum/go-ethereum/common"
)

// Gate identifies one of the vault's four access gates. A gate is an
// external contract consulted before the corresponding share/asset
// movement; the zero address removes the gate.
type Gate string

const (
	GateReceiveShares Gate = "receiveShares"
	GateSendShares    Gate = "sendShares"
	GateReceiveAssets Gate = "receiveAssets"
	GateSendAssets    Gate = "sendAssets"
)

var ErrUnknownGate = errors.New("unknown gate")

type gateSpec struct {
	setter  govfunc.Func
	readSel ledger.Selector
}

var gateSpecs = map[Gate]gateSpec{
	GateReceiveShares: {
		setter:  govfunc.SetReceiveSharesGate,
		readSel: ledger.SelectorFromSignature("receiveSharesGate()"),
	},
	GateSendShares: {
		setter:  govfunc.SetSendSharesGate,
		readSel: ledger.SelectorFromSignature("sendSharesGate()"),
	},
	GateReceiveAssets: {
		setter:  govfunc.SetReceiveAssetsGate,
		readSel: ledger.SelectorFromSignature("receiveAssetsGate()"),
	},
	GateSendAssets: {
		setter:  govfunc.SetSendAssetsGate,
		readSel: ledger.SelectorFromSignature("sendAssetsGate()"),
	},
}

// Gates manages the vault's four access gates.
type Gates struct {
	config Config
}

func NewGates(config Config) *Gates {
	return &Gates{config: config}
}

func (g *Gates) SubmitSetGate(
	ctx context.Context,
	gate Gate,
	addr common.Address,
) (*ledger.Receipt, error) {
	spec, ok := gateSpecs[gate]
	if !ok {
		return nil, ErrUnknownGate
	}
	return g.config.Coordinator.Submit(
		ctx,
		spec.setter,
		ledger.AddressWord(addr),
	)
}

func (g *Gates) SetGateAfterTimelock(
	ctx context.Context,
	gate Gate,
	addr common.Address,
) (*ledger.Receipt, error) {
	spec, ok := gateSpecs[gate]
	if !ok {
		return nil, ErrUnknownGate
	}
	return g.config.Coordinator.ExecuteMatured(
		ctx,
		spec.setter,
		ledger.AddressWord(addr),
	)
}

func (g *Gates) InstantSetGate(
	ctx context.Context,
	gate Gate,
	addr common.Address,
) (*ledger.Receipt, error) {
	spec, ok := gateSpecs[gate]
	if !ok {
		return nil, ErrUnknownGate
	}
	return g.config.Coordinator.InstantApply(
		ctx,
		spec.setter,
		ledger.AddressWord(addr),
	)
}

// Gate reads the current gate contract address (zero when no gate is
// set).
func (g *Gates) Gate(
	ctx context.Context,
	gate Gate,
) (common.Address, error) {
	spec, ok := gateSpecs[gate]
	if !ok {
		return common.Address{}, ErrUnknownGate
	}
	return callAddress(ctx, g.config.Gateway, spec.readSel)
}
