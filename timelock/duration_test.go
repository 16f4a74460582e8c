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

package timelock_test

import (
	"context"
	"testing"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger/ledgermock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncreaseTimelockTwoPhase(t *testing.T) {
	mock := ledgermock.New()
	// The increase function itself is timelocked, so raising another
	// function's duration takes the full two-phase path
	mock.SetTimelock(govfunc.IncreaseTimelock, dayInSeconds)
	coordinator := newTestCoordinator(t, mock)
	ctx := context.Background()

	_, err := coordinator.SubmitIncreaseTimelock(
		ctx,
		govfunc.AddAdapter,
		3*dayInSeconds,
	)
	require.NoError(t, err)

	mock.Advance(dayInSeconds)
	_, err = coordinator.IncreaseTimelockAfterTimelock(
		ctx,
		govfunc.AddAdapter,
		3*dayInSeconds,
	)
	require.NoError(t, err)

	duration, err := coordinator.Duration(ctx, govfunc.AddAdapter)
	require.NoError(t, err)
	assert.Equal(t, uint64(3*dayInSeconds), duration)
}

func TestDurationChangeInvalidTarget(t *testing.T) {
	mock := ledgermock.New()
	coordinator := newTestCoordinator(t, mock)
	ctx := context.Background()

	bogus := govfunc.Func("renounceOwnership")
	_, err := coordinator.SubmitIncreaseTimelock(ctx, bogus, 60)
	assert.ErrorIs(t, err, govfunc.ErrUnknownFunction)
	_, err = coordinator.SubmitDecreaseTimelock(ctx, bogus, 60)
	assert.ErrorIs(t, err, govfunc.ErrUnknownFunction)
	_, err = coordinator.SubmitAbdicate(ctx, bogus)
	assert.ErrorIs(t, err, govfunc.ErrUnknownFunction)
}

func TestAbdicateTwoPhase(t *testing.T) {
	mock := ledgermock.New()
	mock.SetTimelock(govfunc.AbdicateSubmit, dayInSeconds)
	coordinator := newTestCoordinator(t, mock)
	ctx := context.Background()

	_, err := coordinator.SubmitAbdicate(ctx, govfunc.SetPerformanceFee)
	require.NoError(t, err)
	assert.False(t, mock.Abdicated(govfunc.SetPerformanceFee))

	mock.Advance(dayInSeconds)
	_, err = coordinator.AbdicateAfterTimelock(ctx, govfunc.SetPerformanceFee)
	require.NoError(t, err)
	assert.True(t, mock.Abdicated(govfunc.SetPerformanceFee))
}
