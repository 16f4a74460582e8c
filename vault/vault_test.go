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

package vault_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/blinklabs-io/paramlock/ledger/ledgermock"
	"github.com/blinklabs-io/paramlock/timelock"
	"github.com/blinklabs-io/paramlock/vault"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dayInSeconds = 86400

var (
	adapterAddr = common.HexToAddress(
		"0x1111111111111111111111111111111111111111",
	)
	otherAddr = common.HexToAddress(
		"0x2222222222222222222222222222222222222222",
	)
)

func newTestConfig(t *testing.T, mock *ledgermock.Ledger) vault.Config {
	t.Helper()
	coordinator, err := timelock.NewCoordinator(timelock.CoordinatorConfig{
		PromRegistry: prometheus.NewRegistry(),
		Gateway:      mock,
	})
	require.NoError(t, err)
	return vault.Config{
		Coordinator: coordinator,
		Gateway:     mock,
	}
}

func wad(units int64) *big.Int {
	scale, _ := new(big.Int).SetString("1000000000000000000", 10)
	return new(big.Int).Mul(big.NewInt(units), scale)
}

func TestAdaptersTwoPhase(t *testing.T) {
	mock := ledgermock.New()
	mock.SetTimelock(govfunc.AddAdapter, dayInSeconds)
	adapters := vault.NewAdapters(newTestConfig(t, mock))
	ctx := context.Background()

	_, err := adapters.SubmitAddAdapter(ctx, adapterAddr)
	require.NoError(t, err)

	// Not yet applied
	trusted, err := adapters.IsAdapter(ctx, adapterAddr)
	require.NoError(t, err)
	assert.False(t, trusted)

	mock.Advance(dayInSeconds)
	_, err = adapters.AddAdapterAfterTimelock(ctx, adapterAddr)
	require.NoError(t, err)

	trusted, err = adapters.IsAdapter(ctx, adapterAddr)
	require.NoError(t, err)
	assert.True(t, trusted)
}

func TestAdaptersInstantRemove(t *testing.T) {
	mock := ledgermock.New()
	adapters := vault.NewAdapters(newTestConfig(t, mock))
	ctx := context.Background()

	_, err := adapters.InstantAddAdapter(ctx, adapterAddr)
	require.NoError(t, err)
	_, err = adapters.InstantRemoveAdapter(ctx, adapterAddr)
	require.NoError(t, err)

	trusted, err := adapters.IsAdapter(ctx, adapterAddr)
	require.NoError(t, err)
	assert.False(t, trusted)
}

func TestCapsIncreaseTimelocked(t *testing.T) {
	mock := ledgermock.New()
	mock.SetTimelock(govfunc.IncreaseAbsoluteCap, dayInSeconds)
	caps := vault.NewCaps(newTestConfig(t, mock))
	ctx := context.Background()
	var id [32]byte
	id[0] = 0x01

	_, err := caps.SubmitIncreaseAbsoluteCap(ctx, id, wad(1000))
	require.NoError(t, err)
	mock.Advance(dayInSeconds)
	_, err = caps.IncreaseAbsoluteCapAfterTimelock(ctx, id, wad(1000))
	require.NoError(t, err)

	got, err := caps.AbsoluteCap(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, wad(1000).Cmp(got))
}

func TestCapsDecreaseDirect(t *testing.T) {
	mock := ledgermock.New()
	caps := vault.NewCaps(newTestConfig(t, mock))
	ctx := context.Background()
	var id [32]byte
	id[0] = 0x01

	_, err := caps.InstantIncreaseAbsoluteCap(ctx, id, wad(1000))
	require.NoError(t, err)

	// Tightening takes effect without any proposal
	_, err = caps.DecreaseAbsoluteCap(ctx, id, wad(100))
	require.NoError(t, err)
	assert.Zero(t, mock.PendingCount())

	got, err := caps.AbsoluteCap(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, wad(100).Cmp(got))
}

func TestCapsRelative(t *testing.T) {
	mock := ledgermock.New()
	caps := vault.NewCaps(newTestConfig(t, mock))
	ctx := context.Background()
	var id [32]byte
	id[0] = 0x02

	// 50% as a WAD fraction
	half, _ := new(big.Int).SetString("500000000000000000", 10)
	_, err := caps.InstantIncreaseRelativeCap(ctx, id, half)
	require.NoError(t, err)

	got, err := caps.RelativeCap(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, half.Cmp(got))

	_, err = caps.DecreaseRelativeCap(ctx, id, big.NewInt(0))
	require.NoError(t, err)
	got, err = caps.RelativeCap(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, got.Sign())
}

func TestCapsRejectNegative(t *testing.T) {
	mock := ledgermock.New()
	caps := vault.NewCaps(newTestConfig(t, mock))
	var id [32]byte

	_, err := caps.SubmitIncreaseAbsoluteCap(
		context.Background(),
		id,
		big.NewInt(-1),
	)
	assert.ErrorIs(t, err, ledger.ErrValueOutOfRange)
}

func TestFees(t *testing.T) {
	mock := ledgermock.New()
	fees := vault.NewFees(newTestConfig(t, mock))
	ctx := context.Background()

	// 5% performance fee, WAD-scaled
	rate, _ := new(big.Int).SetString("50000000000000000", 10)
	_, err := fees.InstantSetPerformanceFee(ctx, rate)
	require.NoError(t, err)
	got, err := fees.PerformanceFee(ctx)
	require.NoError(t, err)
	assert.Zero(t, rate.Cmp(got))

	_, err = fees.InstantSetPerformanceFeeRecipient(ctx, otherAddr)
	require.NoError(t, err)
	recipient, err := fees.PerformanceFeeRecipient(ctx)
	require.NoError(t, err)
	assert.Equal(t, otherAddr, recipient)

	_, err = fees.InstantSetManagementFee(ctx, big.NewInt(0))
	require.NoError(t, err)
	_, err = fees.InstantSetManagementFeeRecipient(ctx, adapterAddr)
	require.NoError(t, err)
	recipient, err = fees.ManagementFeeRecipient(ctx)
	require.NoError(t, err)
	assert.Equal(t, adapterAddr, recipient)
}

func TestFeesTwoPhase(t *testing.T) {
	mock := ledgermock.New()
	mock.SetTimelock(govfunc.SetManagementFee, dayInSeconds)
	fees := vault.NewFees(newTestConfig(t, mock))
	ctx := context.Background()

	rate, _ := new(big.Int).SetString("10000000000000000", 10)
	_, err := fees.SubmitSetManagementFee(ctx, rate)
	require.NoError(t, err)
	_, err = fees.SetManagementFeeAfterTimelock(ctx, rate)
	assert.ErrorIs(t, err, ledger.ErrNotMatured)

	mock.Advance(dayInSeconds)
	_, err = fees.SetManagementFeeAfterTimelock(ctx, rate)
	require.NoError(t, err)
	got, err := fees.ManagementFee(ctx)
	require.NoError(t, err)
	assert.Zero(t, rate.Cmp(got))
}

func TestGates(t *testing.T) {
	mock := ledgermock.New()
	gates := vault.NewGates(newTestConfig(t, mock))
	ctx := context.Background()

	for _, gate := range []vault.Gate{
		vault.GateReceiveShares,
		vault.GateSendShares,
		vault.GateReceiveAssets,
		vault.GateSendAssets,
	} {
		_, err := gates.InstantSetGate(ctx, gate, otherAddr)
		require.NoError(t, err)
		got, err := gates.Gate(ctx, gate)
		require.NoError(t, err)
		assert.Equal(t, otherAddr, got)

		// The zero address removes the gate
		_, err = gates.InstantSetGate(ctx, gate, common.Address{})
		require.NoError(t, err)
		got, err = gates.Gate(ctx, gate)
		require.NoError(t, err)
		assert.Equal(t, common.Address{}, got)
	}
}

func TestGatesUnknown(t *testing.T) {
	mock := ledgermock.New()
	gates := vault.NewGates(newTestConfig(t, mock))
	ctx := context.Background()

	_, err := gates.SubmitSetGate(ctx, vault.Gate("sideDoor"), otherAddr)
	assert.ErrorIs(t, err, vault.ErrUnknownGate)
	_, err = gates.Gate(ctx, vault.Gate("sideDoor"))
	assert.ErrorIs(t, err, vault.ErrUnknownGate)
}

func TestRoles(t *testing.T) {
	mock := ledgermock.New()
	roles := vault.NewRoles(newTestConfig(t, mock))
	ctx := context.Background()

	// Allocator changes are governed
	_, err := roles.InstantSetIsAllocator(ctx, otherAddr, true)
	require.NoError(t, err)
	isAllocator, err := roles.IsAllocator(ctx, otherAddr)
	require.NoError(t, err)
	assert.True(t, isAllocator)

	// Sentinel, curator and owner changes bypass the timelock protocol
	_, err = roles.SetIsSentinel(ctx, otherAddr, true)
	require.NoError(t, err)
	isSentinel, err := roles.IsSentinel(ctx, otherAddr)
	require.NoError(t, err)
	assert.True(t, isSentinel)

	_, err = roles.SetCurator(ctx, adapterAddr)
	require.NoError(t, err)
	curator, err := roles.Curator(ctx)
	require.NoError(t, err)
	assert.Equal(t, adapterAddr, curator)

	_, err = roles.SetOwner(ctx, otherAddr)
	require.NoError(t, err)
	owner, err := roles.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, otherAddr, owner)
	assert.Zero(t, mock.PendingCount())
}

func TestAdapterRegistry(t *testing.T) {
	mock := ledgermock.New()
	registry := vault.NewAdapterRegistry(newTestConfig(t, mock))
	ctx := context.Background()

	_, err := registry.InstantSetAdapterRegistry(ctx, otherAddr)
	require.NoError(t, err)
	got, err := registry.AdapterRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, otherAddr, got)
}

func TestMaxRate(t *testing.T) {
	mock := ledgermock.New()
	maxRate := vault.NewMaxRate(newTestConfig(t, mock))
	ctx := context.Background()

	rate := big.NewInt(500)
	_, err := maxRate.InstantSetMaxRate(ctx, rate)
	require.NoError(t, err)
	got, err := maxRate.MaxRate(ctx)
	require.NoError(t, err)
	assert.Zero(t, rate.Cmp(got))
}

func TestForceDeallocatePenalty(t *testing.T) {
	mock := ledgermock.New()
	penalties := vault.NewPenalties(newTestConfig(t, mock))
	ctx := context.Background()

	// 2% penalty, WAD-scaled
	penalty, _ := new(big.Int).SetString("20000000000000000", 10)
	_, err := penalties.InstantSetForceDeallocatePenalty(
		ctx,
		adapterAddr,
		penalty,
	)
	require.NoError(t, err)
	got, err := penalties.ForceDeallocatePenalty(ctx, adapterAddr)
	require.NoError(t, err)
	assert.Zero(t, penalty.Cmp(got))

	// Unset adapters read back zero
	got, err = penalties.ForceDeallocatePenalty(ctx, otherAddr)
	require.NoError(t, err)
	assert.Zero(t, got.Sign())
}
