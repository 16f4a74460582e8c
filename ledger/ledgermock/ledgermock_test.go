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
	"context"
	"testing"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitOf(t *testing.T, op ledger.EncodedOp) ledger.EncodedOp {
	t.Helper()
	return ledger.PackBytesArg(ledger.SubmitSelector, op.Bytes())
}

func TestBatchAtomicity(t *testing.T) {
	mock := New()
	ctx := context.Background()

	rateOp, err := govfunc.SetMaxRate.EncodeOp(ledger.Uint64Word(500))
	require.NoError(t, err)
	// Second element targets a function with no pending proposal, so the
	// batch as a whole must fail
	feeOp, err := govfunc.SetManagementFee.EncodeOp(ledger.Uint64Word(100))
	require.NoError(t, err)

	_, err = mock.Batch(ctx, []ledger.EncodedOp{
		submitOf(t, rateOp),
		feeOp,
	})
	assert.ErrorIs(t, err, ledger.ErrNoSuchProposal)

	// The successful submit in the same batch rolled back with it
	assert.False(t, mock.HasPending(rateOp))
	assert.Zero(t, mock.PendingCount())
}

func TestBatchAppliesInOrder(t *testing.T) {
	mock := New()
	ctx := context.Background()

	op, err := govfunc.SetMaxRate.EncodeOp(ledger.Uint64Word(500))
	require.NoError(t, err)

	// Submit and execute in one unit works only because the submit lands
	// first and the function's duration is zero
	receipt, err := mock.Batch(ctx, []ledger.EncodedOp{submitOf(t, op), op})
	require.NoError(t, err)
	assert.Equal(t, ledger.ReceiptStatusConfirmed, receipt.Status)
	assert.Zero(t, mock.PendingCount())

	// Reversed order fails: nothing is pending when the execute runs
	_, err = mock.Batch(ctx, []ledger.EncodedOp{op, submitOf(t, op)})
	assert.ErrorIs(t, err, ledger.ErrNoSuchProposal)
	assert.Zero(t, mock.PendingCount())
}

func TestResubmitOverwritesProposal(t *testing.T) {
	mock := New()
	mock.SetTimelock(govfunc.SetMaxRate, 100)
	ctx := context.Background()

	op, err := govfunc.SetMaxRate.EncodeOp(ledger.Uint64Word(500))
	require.NoError(t, err)

	_, err = mock.Execute(ctx, submitOf(t, op))
	require.NoError(t, err)

	// Raise the duration and resubmit the identical operation: the
	// proposal is keyed by operation identity, so the maturity resets
	mock.SetTimelock(govfunc.SetMaxRate, 1000)
	mock.Advance(50)
	_, err = mock.Execute(ctx, submitOf(t, op))
	require.NoError(t, err)
	assert.Equal(t, 1, mock.PendingCount())

	readOp := ledger.PackBytesArg(ledger.ExecutableAtSelector, op.Bytes())
	data, err := mock.Call(ctx, readOp)
	require.NoError(t, err)
	maturity, err := ledger.WordToUint64(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(StartTime+50+1000), maturity)
}

func TestSubmitUnknownSelector(t *testing.T) {
	mock := New()

	bogus := ledger.NewEncodedOp(
		ledger.SelectorFromSignature("renounceOwnership()"),
		nil,
	)
	_, err := mock.Execute(context.Background(), submitOf(t, bogus))
	assert.ErrorIs(t, err, govfunc.ErrUnknownFunction)
}

func TestExecuteRollsBackFailedMulticall(t *testing.T) {
	mock := New()
	ctx := context.Background()

	op, err := govfunc.SetMaxRate.EncodeOp(ledger.Uint64Word(500))
	require.NoError(t, err)
	multicall := ledger.PackBytesArrayArg(
		ledger.MulticallSelector,
		[][]byte{
			submitOf(t, op).Bytes(),
			{0x01, 0x02, 0x03, 0x04}, // well-formed frame, unknown selector
		},
	)

	_, err = mock.Execute(ctx, multicall)
	require.Error(t, err)
	assert.Zero(t, mock.PendingCount())
}

func TestBlockNumberAdvances(t *testing.T) {
	mock := New()
	ctx := context.Background()

	op, err := govfunc.SetMaxRate.EncodeOp(ledger.Uint64Word(500))
	require.NoError(t, err)
	first, err := mock.Execute(ctx, submitOf(t, op))
	require.NoError(t, err)
	second, err := mock.Execute(ctx, op)
	require.NoError(t, err)
	assert.Greater(t, second.BlockNumber, first.BlockNumber)
}
