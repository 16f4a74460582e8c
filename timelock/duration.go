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

package timelock

import (
	"context"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
)

// Timelock duration changes are themselves governed functions, with a
// deliberate asymmetry between the two directions. Increasing a delay
// tightens protection, so it gets the instant fast path like any other
// governed function. Decreasing a delay weakens protection and therefore
// has no instant counterpart at all: every decrease waits out the
// decrease function's own current delay, even when that delay is zero for
// the target.

func durationChangeArgs(
	target govfunc.Func,
	seconds uint64,
) ([]ledger.Word, error) {
	if !target.Valid() {
		return nil, govfunc.NewUnknownFunctionError(string(target))
	}
	return []ledger.Word{
		ledger.SelectorWord(target.Selector()),
		ledger.Uint64Word(seconds),
	}, nil
}

// SubmitIncreaseTimelock submits a proposal raising target's timelock
// duration to the given number of seconds.
func (c *Coordinator) SubmitIncreaseTimelock(
	ctx context.Context,
	target govfunc.Func,
	seconds uint64,
) (*ledger.Receipt, error) {
	args, err := durationChangeArgs(target, seconds)
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx, govfunc.IncreaseTimelock, args...)
}

// IncreaseTimelockAfterTimelock executes a matured increase proposal.
func (c *Coordinator) IncreaseTimelockAfterTimelock(
	ctx context.Context,
	target govfunc.Func,
	seconds uint64,
) (*ledger.Receipt, error) {
	args, err := durationChangeArgs(target, seconds)
	if err != nil {
		return nil, err
	}
	return c.ExecuteMatured(ctx, govfunc.IncreaseTimelock, args...)
}

// InstantIncreaseTimelock raises target's timelock duration in one atomic
// step, valid while the increase function's own duration is zero.
func (c *Coordinator) InstantIncreaseTimelock(
	ctx context.Context,
	target govfunc.Func,
	seconds uint64,
) (*ledger.Receipt, error) {
	args, err := durationChangeArgs(target, seconds)
	if err != nil {
		return nil, err
	}
	return c.InstantApply(ctx, govfunc.IncreaseTimelock, args...)
}

// SubmitDecreaseTimelock submits a proposal lowering target's timelock
// duration to the given number of seconds. There is deliberately no
// InstantDecreaseTimelock.
func (c *Coordinator) SubmitDecreaseTimelock(
	ctx context.Context,
	target govfunc.Func,
	seconds uint64,
) (*ledger.Receipt, error) {
	args, err := durationChangeArgs(target, seconds)
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx, govfunc.DecreaseTimelock, args...)
}

// DecreaseTimelockAfterTimelock executes a matured decrease proposal.
func (c *Coordinator) DecreaseTimelockAfterTimelock(
	ctx context.Context,
	target govfunc.Func,
	seconds uint64,
) (*ledger.Receipt, error) {
	args, err := durationChangeArgs(target, seconds)
	if err != nil {
		return nil, err
	}
	return c.ExecuteMatured(ctx, govfunc.DecreaseTimelock, args...)
}

func abdicateArgs(target govfunc.Func) ([]ledger.Word, error) {
	if !target.Valid() {
		return nil, govfunc.NewUnknownFunctionError(string(target))
	}
	return []ledger.Word{
		ledger.SelectorWord(target.Selector()),
	}, nil
}

// SubmitAbdicate submits a proposal permanently foreclosing submission
// rights for target. Abdication is irrevocable: once executed, every
// later submission for target fails with ErrSubmissionAbdicated.
func (c *Coordinator) SubmitAbdicate(
	ctx context.Context,
	target govfunc.Func,
) (*ledger.Receipt, error) {
	args, err := abdicateArgs(target)
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx, govfunc.AbdicateSubmit, args...)
}

// AbdicateAfterTimelock executes a matured abdication proposal.
func (c *Coordinator) AbdicateAfterTimelock(
	ctx context.Context,
	target govfunc.Func,
) (*ledger.Receipt, error) {
	args, err := abdicateArgs(target)
	if err != nil {
		return nil, err
	}
	return c.ExecuteMatured(ctx, govfunc.AbdicateSubmit, args...)
}

// InstantAbdicate forecloses submission rights for target in one atomic
// step, valid while the abdicate function's own duration is zero.
func (c *Coordinator) InstantAbdicate(
	ctx context.Context,
	target govfunc.Func,
) (*ledger.Receipt, error) {
	args, err := abdicateArgs(target)
	if err != nil {
		return nil, err
	}
	return c.InstantApply(ctx, govfunc.AbdicateSubmit, args...)
}
