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

package ledgermock

import (
	"maps"
	"math/big"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/ethereum/go-ethereum/common"
)

// Read accessors and ungoverned direct setters understood by the mock
// vault, mirroring the vault ABI from the other side of the wire.
var (
	isAdapterSel               = ledger.SelectorFromSignature("isAdapter(address)")
	adapterRegistrySel         = ledger.SelectorFromSignature("adapterRegistry()")
	isAllocatorSel             = ledger.SelectorFromSignature("isAllocator(address)")
	isSentinelSel              = ledger.SelectorFromSignature("isSentinel(address)")
	ownerSel                   = ledger.SelectorFromSignature("owner()")
	curatorSel                 = ledger.SelectorFromSignature("curator()")
	absoluteCapSel             = ledger.SelectorFromSignature("absoluteCap(bytes32)")
	relativeCapSel             = ledger.SelectorFromSignature("relativeCap(bytes32)")
	performanceFeeSel          = ledger.SelectorFromSignature("performanceFee()")
	managementFeeSel           = ledger.SelectorFromSignature("managementFee()")
	performanceFeeRecipientSel = ledger.SelectorFromSignature("performanceFeeRecipient()")
	managementFeeRecipientSel  = ledger.SelectorFromSignature("managementFeeRecipient()")
	receiveSharesGateSel       = ledger.SelectorFromSignature("receiveSharesGate()")
	sendSharesGateSel          = ledger.SelectorFromSignature("sendSharesGate()")
	receiveAssetsGateSel       = ledger.SelectorFromSignature("receiveAssetsGate()")
	sendAssetsGateSel          = ledger.SelectorFromSignature("sendAssetsGate()")
	forceDeallocatePenaltySel  = ledger.SelectorFromSignature("forceDeallocatePenalty(address)")
	maxRateSel                 = ledger.SelectorFromSignature("maxRate()")

	decreaseAbsoluteCapSel = ledger.SelectorFromSignature("decreaseAbsoluteCap(bytes32,uint256)")
	decreaseRelativeCapSel = ledger.SelectorFromSignature("decreaseRelativeCap(bytes32,uint256)")
	setIsSentinelSel       = ledger.SelectorFromSignature("setIsSentinel(address,bool)")
	setCuratorSel          = ledger.SelectorFromSignature("setCurator(address)")
	setOwnerSel            = ledger.SelectorFromSignature("setOwner(address)")
)

// vaultState is the mutable vault configuration owned by the mock ledger.
type vaultState struct {
	timelocks map[ledger.Selector]uint64
	proposals map[ledger.OpHash]proposal
	abdicated map[ledger.Selector]bool

	adapters        map[common.Address]bool
	adapterRegistry common.Address
	allocators      map[common.Address]bool
	sentinels       map[common.Address]bool
	owner           common.Address
	curator         common.Address

	absoluteCaps map[[32]byte]*big.Int
	relativeCaps map[[32]byte]*big.Int

	performanceFee          *big.Int
	managementFee           *big.Int
	performanceFeeRecipient common.Address
	managementFeeRecipient  common.Address

	receiveSharesGate common.Address
	sendSharesGate    common.Address
	receiveAssetsGate common.Address
	sendAssetsGate    common.Address

	forceDeallocatePenalty map[common.Address]*big.Int
	maxRate                *big.Int
}

func newVaultState() *vaultState {
	return &vaultState{
		timelocks:              make(map[ledger.Selector]uint64),
		proposals:              make(map[ledger.OpHash]proposal),
		abdicated:              make(map[ledger.Selector]bool),
		adapters:               make(map[common.Address]bool),
		allocators:             make(map[common.Address]bool),
		sentinels:              make(map[common.Address]bool),
		absoluteCaps:           make(map[[32]byte]*big.Int),
		relativeCaps:           make(map[[32]byte]*big.Int),
		performanceFee:         new(big.Int),
		managementFee:          new(big.Int),
		forceDeallocatePenalty: make(map[common.Address]*big.Int),
		maxRate:                new(big.Int),
	}
}

func cloneBigMap[K comparable](m map[K]*big.Int) map[K]*big.Int {
	out := make(map[K]*big.Int, len(m))
	for k, v := range m {
		out[k] = new(big.Int).Set(v)
	}
	return out
}

// clone deep-copies the state so a failing batch can be rolled back.
func (s *vaultState) clone() *vaultState {
	out := *s
	out.timelocks = maps.Clone(s.timelocks)
	out.proposals = maps.Clone(s.proposals)
	out.abdicated = maps.Clone(s.abdicated)
	out.adapters = maps.Clone(s.adapters)
	out.allocators = maps.Clone(s.allocators)
	out.sentinels = maps.Clone(s.sentinels)
	out.absoluteCaps = cloneBigMap(s.absoluteCaps)
	out.relativeCaps = cloneBigMap(s.relativeCaps)
	out.performanceFee = new(big.Int).Set(s.performanceFee)
	out.managementFee = new(big.Int).Set(s.managementFee)
	out.forceDeallocatePenalty = cloneBigMap(s.forceDeallocatePenalty)
	out.maxRate = new(big.Int).Set(s.maxRate)
	return &out
}

func bigWord(v *big.Int) ([]byte, error) {
	w, err := ledger.BigWord(v)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// read resolves a read-only call against current state.
func (s *vaultState) read(op ledger.EncodedOp, now uint64) ([]byte, error) {
	args := op.Args()
	switch op.Selector() {
	case ledger.TimelockSelector:
		target, err := argSelector(args, 0)
		if err != nil {
			return nil, err
		}
		return ledger.Uint64Word(s.timelocks[target]).Bytes(), nil
	case ledger.ExecutableAtSelector:
		inner, err := ledger.UnpackBytesArg(args)
		if err != nil {
			return nil, err
		}
		innerOp, err := ledger.EncodedOpFromBytes(inner)
		if err != nil {
			return nil, err
		}
		if p, ok := s.proposals[innerOp.Hash()]; ok {
			return ledger.Uint64Word(p.maturity).Bytes(), nil
		}
		return ledger.Uint64Word(0).Bytes(), nil
	case isAdapterSel:
		addr, err := argAddress(args, 0)
		if err != nil {
			return nil, err
		}
		return ledger.BoolWord(s.adapters[addr]).Bytes(), nil
	case adapterRegistrySel:
		return ledger.AddressWord(s.adapterRegistry).Bytes(), nil
	case isAllocatorSel:
		addr, err := argAddress(args, 0)
		if err != nil {
			return nil, err
		}
		return ledger.BoolWord(s.allocators[addr]).Bytes(), nil
	case isSentinelSel:
		addr, err := argAddress(args, 0)
		if err != nil {
			return nil, err
		}
		return ledger.BoolWord(s.sentinels[addr]).Bytes(), nil
	case ownerSel:
		return ledger.AddressWord(s.owner).Bytes(), nil
	case curatorSel:
		return ledger.AddressWord(s.curator).Bytes(), nil
	case absoluteCapSel:
		id, err := argID(args, 0)
		if err != nil {
			return nil, err
		}
		if v, ok := s.absoluteCaps[id]; ok {
			return bigWord(v)
		}
		return ledger.Uint64Word(0).Bytes(), nil
	case relativeCapSel:
		id, err := argID(args, 0)
		if err != nil {
			return nil, err
		}
		if v, ok := s.relativeCaps[id]; ok {
			return bigWord(v)
		}
		return ledger.Uint64Word(0).Bytes(), nil
	case performanceFeeSel:
		return bigWord(s.performanceFee)
	case managementFeeSel:
		return bigWord(s.managementFee)
	case performanceFeeRecipientSel:
		return ledger.AddressWord(s.performanceFeeRecipient).Bytes(), nil
	case managementFeeRecipientSel:
		return ledger.AddressWord(s.managementFeeRecipient).Bytes(), nil
	case receiveSharesGateSel:
		return ledger.AddressWord(s.receiveSharesGate).Bytes(), nil
	case sendSharesGateSel:
		return ledger.AddressWord(s.sendSharesGate).Bytes(), nil
	case receiveAssetsGateSel:
		return ledger.AddressWord(s.receiveAssetsGate).Bytes(), nil
	case sendAssetsGateSel:
		return ledger.AddressWord(s.sendAssetsGate).Bytes(), nil
	case forceDeallocatePenaltySel:
		addr, err := argAddress(args, 0)
		if err != nil {
			return nil, err
		}
		if penalty, ok := s.forceDeallocatePenalty[addr]; ok {
			return bigWord(penalty)
		}
		return ledger.Uint64Word(0).Bytes(), nil
	case maxRateSel:
		return bigWord(s.maxRate)
	}
	_ = now
	return nil, ledger.ErrMalformedOp
}

// applyGovernedEffect mutates state for a governed operation whose
// maturity gate has already passed.
func (s *vaultState) applyGovernedEffect(f govfunc.Func, args []byte) error {
	switch f {
	case govfunc.AddAdapter:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		s.adapters[addr] = true
	case govfunc.RemoveAdapter:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		delete(s.adapters, addr)
	case govfunc.IncreaseTimelock, govfunc.DecreaseTimelock:
		target, err := argSelector(args, 0)
		if err != nil {
			return err
		}
		seconds, err := argUint64(args, 1)
		if err != nil {
			return err
		}
		s.timelocks[target] = seconds
	case govfunc.IncreaseAbsoluteCap:
		id, err := argID(args, 0)
		if err != nil {
			return err
		}
		newCap, err := argBig(args, 1)
		if err != nil {
			return err
		}
		s.absoluteCaps[id] = newCap
	case govfunc.IncreaseRelativeCap:
		id, err := argID(args, 0)
		if err != nil {
			return err
		}
		newCap, err := argBig(args, 1)
		if err != nil {
			return err
		}
		s.relativeCaps[id] = newCap
	case govfunc.SetIsAllocator:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		isAllocator, err := argBool(args, 1)
		if err != nil {
			return err
		}
		if isAllocator {
			s.allocators[addr] = true
		} else {
			delete(s.allocators, addr)
		}
	case govfunc.SetAdapterRegistry:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		s.adapterRegistry = addr
	case govfunc.SetReceiveSharesGate:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		s.receiveSharesGate = addr
	case govfunc.SetSendSharesGate:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		s.sendSharesGate = addr
	case govfunc.SetReceiveAssetsGate:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		s.receiveAssetsGate = addr
	case govfunc.SetSendAssetsGate:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		s.sendAssetsGate = addr
	case govfunc.SetPerformanceFee:
		fee, err := argBig(args, 0)
		if err != nil {
			return err
		}
		s.performanceFee = fee
	case govfunc.SetManagementFee:
		fee, err := argBig(args, 0)
		if err != nil {
			return err
		}
		s.managementFee = fee
	case govfunc.SetPerformanceFeeRecipient:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		s.performanceFeeRecipient = addr
	case govfunc.SetManagementFeeRecipient:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		s.managementFeeRecipient = addr
	case govfunc.SetForceDeallocatePenalty:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		penalty, err := argBig(args, 1)
		if err != nil {
			return err
		}
		s.forceDeallocatePenalty[addr] = penalty
	case govfunc.SetMaxRate:
		rate, err := argBig(args, 0)
		if err != nil {
			return err
		}
		s.maxRate = rate
	case govfunc.AbdicateSubmit:
		target, err := argSelector(args, 0)
		if err != nil {
			return err
		}
		s.abdicated[target] = true
	default:
		return govfunc.NewUnknownFunctionError(string(f))
	}
	return nil
}

// applyDirect mutates state for the vault's ungoverned entry points
// (tightening operations and owner role assignments that bypass the
// timelock protocol).
func (s *vaultState) applyDirect(op ledger.EncodedOp) error {
	args := op.Args()
	switch op.Selector() {
	case decreaseAbsoluteCapSel:
		id, err := argID(args, 0)
		if err != nil {
			return err
		}
		newCap, err := argBig(args, 1)
		if err != nil {
			return err
		}
		s.absoluteCaps[id] = newCap
	case decreaseRelativeCapSel:
		id, err := argID(args, 0)
		if err != nil {
			return err
		}
		newCap, err := argBig(args, 1)
		if err != nil {
			return err
		}
		s.relativeCaps[id] = newCap
	case setIsSentinelSel:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		isSentinel, err := argBool(args, 1)
		if err != nil {
			return err
		}
		if isSentinel {
			s.sentinels[addr] = true
		} else {
			delete(s.sentinels, addr)
		}
	case setCuratorSel:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		s.curator = addr
	case setOwnerSel:
		addr, err := argAddress(args, 0)
		if err != nil {
			return err
		}
		s.owner = addr
	default:
		return ledger.ErrMalformedOp
	}
	return nil
}
