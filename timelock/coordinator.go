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

// Package timelock implements the proposal coordinator for the vault's
// two-phase governance protocol. Every governed change is first submitted,
// then executed once its function-specific delay has elapsed; when the
// delay is zero the two phases may be collapsed into one atomic batch.
//
// The ledger is the single owner of proposal state. The coordinator holds
// no proposal state and no locks of its own: a second client process could
// race any client-side coordination regardless, so correctness is always
// delegated to the ledger's own gating.
package timelock

import (
	"context"
	"io"
	"log/slog"

	"github.com/blinklabs-io/paramlock/event"
	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SubmittedEventType      event.EventType = "timelock.submitted"
	ExecutedEventType       event.EventType = "timelock.executed"
	InstantAppliedEventType event.EventType = "timelock.instant_applied"
	RevokedEventType        event.EventType = "timelock.revoked"
)

// ProposalEvent is the payload for all proposal lifecycle events.
type ProposalEvent struct {
	Func   govfunc.Func
	OpHash ledger.OpHash
	TxHash string
}

type CoordinatorConfig struct {
	PromRegistry prometheus.Registerer
	Gateway      ledger.Gateway
	Logger       *slog.Logger
	EventBus     *event.EventBus
	// DisableInstantPreflight skips the advisory timelock read before an
	// instant-apply batch. The read only provides fast failure without
	// spending a transaction; the batch itself stays correct without it.
	DisableInstantPreflight bool
}

// Coordinator drives submit, execute-after-maturity, instant-apply and
// revoke for every governed function.
type Coordinator struct {
	config  CoordinatorConfig
	gateway ledger.Gateway
	logger  *slog.Logger
	metrics struct {
		submissions    prometheus.Counter
		executions     prometheus.Counter
		instantApplies prometheus.Counter
		revocations    prometheus.Counter
		failures       *prometheus.CounterVec
	}
}

func NewCoordinator(config CoordinatorConfig) (*Coordinator, error) {
	if config.Gateway == nil {
		return nil, ErrNilGateway
	}
	c := &Coordinator{
		config:  config,
		gateway: config.Gateway,
	}
	if config.Logger == nil {
		// Create logger to throw away logs
		// We do this so we don't have to add guards around every log operation
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	} else {
		c.logger = config.Logger.With("component", "timelock")
	}
	// Init metrics
	promautoFactory := promauto.With(config.PromRegistry)
	c.metrics.submissions = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "paramlock_submissions_total",
			Help: "total proposals submitted",
		},
	)
	c.metrics.executions = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "paramlock_executions_total",
			Help: "total matured proposals executed",
		},
	)
	c.metrics.instantApplies = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "paramlock_instant_applies_total",
			Help: "total instant (atomic submit+execute) applications",
		},
	)
	c.metrics.revocations = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "paramlock_revocations_total",
			Help: "total proposals revoked",
		},
	)
	c.metrics.failures = promautoFactory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paramlock_operation_failures_total",
			Help: "coordinator operation failures by operation",
		},
		[]string{"operation"},
	)
	return c, nil
}

// Submit submits a proposal for invoking f with the given argument words.
// The ledger records the proposal with maturity fixed at submission time
// from the function's current timelock duration; later duration changes
// affect only future submissions.
func (c *Coordinator) Submit(
	ctx context.Context,
	f govfunc.Func,
	args ...ledger.Word,
) (*ledger.Receipt, error) {
	op, err := f.EncodeOp(args...)
	if err != nil {
		return nil, err
	}
	return c.submitOp(ctx, f, op)
}

func (c *Coordinator) submitOp(
	ctx context.Context,
	f govfunc.Func,
	op ledger.EncodedOp,
) (*ledger.Receipt, error) {
	wrapped := ledger.PackBytesArg(ledger.SubmitSelector, op.Bytes())
	receipt, err := c.gateway.Execute(ctx, wrapped)
	if err != nil {
		c.metrics.failures.WithLabelValues("submit").Inc()
		return nil, NewOperationError("submit", f, op.Hash(), err)
	}
	c.metrics.submissions.Inc()
	c.logger.Info(
		"proposal submitted",
		"function", f.Name(),
		"op_hash", op.Hash().String(),
		"tx_hash", receipt.TxHash.String(),
	)
	c.publish(SubmittedEventType, f, op, receipt)
	return receipt, nil
}

// ExecuteMatured sends the direct invocation of f. The ledger enforces
// the maturity gate: a premature call fails with ErrNotMatured and a call
// with no pending proposal fails with ErrNoSuchProposal. No client-side
// maturity pre-check is performed; any advisory read would be stale the
// instant it returned.
func (c *Coordinator) ExecuteMatured(
	ctx context.Context,
	f govfunc.Func,
	args ...ledger.Word,
) (*ledger.Receipt, error) {
	op, err := f.EncodeOp(args...)
	if err != nil {
		return nil, err
	}
	receipt, err := c.gateway.Execute(ctx, op)
	if err != nil {
		c.metrics.failures.WithLabelValues("execute").Inc()
		return nil, NewOperationError("execute", f, op.Hash(), err)
	}
	c.metrics.executions.Inc()
	c.logger.Info(
		"matured proposal executed",
		"function", f.Name(),
		"op_hash", op.Hash().String(),
		"tx_hash", receipt.TxHash.String(),
	)
	c.publish(ExecutedEventType, f, op, receipt)
	return receipt, nil
}

// InstantApply collapses submit and execute into one atomic batch, valid
// only while f's timelock duration is zero. The batch is the correctness
// mechanism: if another actor raises the duration before the batch
// confirms, the execute step fails its maturity gate and the ledger
// reverts the whole batch, leaving no orphaned pending proposal behind.
// The advisory duration read only exists to fail fast without spending a
// transaction.
//
// Decreasing a timelock duration has no instant path under any
// circumstance, even from zero: instantly weakening a safeguard in a
// single action would leave no observation window. Such calls fail with
// ErrInstantDecreaseForbidden before any ledger traffic.
func (c *Coordinator) InstantApply(
	ctx context.Context,
	f govfunc.Func,
	args ...ledger.Word,
) (*ledger.Receipt, error) {
	if f == govfunc.DecreaseTimelock {
		c.metrics.failures.WithLabelValues("instant").Inc()
		return nil, ErrInstantDecreaseForbidden
	}
	op, err := f.EncodeOp(args...)
	if err != nil {
		return nil, err
	}
	if !c.config.DisableInstantPreflight {
		current, err := c.Duration(ctx, f)
		if err != nil {
			c.metrics.failures.WithLabelValues("instant").Inc()
			return nil, NewOperationError("instant", f, op.Hash(), err)
		}
		if current != 0 {
			c.metrics.failures.WithLabelValues("instant").Inc()
			return nil, NewOperationError(
				"instant",
				f,
				op.Hash(),
				ledger.NewTimelockNotZeroError(current),
			)
		}
	}
	wrapped := ledger.PackBytesArg(ledger.SubmitSelector, op.Bytes())
	receipt, err := c.gateway.Batch(
		ctx,
		[]ledger.EncodedOp{wrapped, op},
	)
	if err != nil {
		c.metrics.failures.WithLabelValues("instant").Inc()
		return nil, NewOperationError("instant", f, op.Hash(), err)
	}
	c.metrics.instantApplies.Inc()
	c.logger.Info(
		"proposal applied instantly",
		"function", f.Name(),
		"op_hash", op.Hash().String(),
		"tx_hash", receipt.TxHash.String(),
	)
	c.publish(InstantAppliedEventType, f, op, receipt)
	return receipt, nil
}

// Revoke revokes the pending proposal for invoking f with the given
// argument words. The ledger enforces that only pending proposals can be
// revoked; maturity does not matter, only that the proposal has not yet
// been executed.
func (c *Coordinator) Revoke(
	ctx context.Context,
	f govfunc.Func,
	args ...ledger.Word,
) (*ledger.Receipt, error) {
	op, err := f.EncodeOp(args...)
	if err != nil {
		return nil, err
	}
	wrapped := ledger.PackBytesArg(ledger.RevokeSelector, op.Bytes())
	receipt, err := c.gateway.Execute(ctx, wrapped)
	if err != nil {
		c.metrics.failures.WithLabelValues("revoke").Inc()
		return nil, NewOperationError("revoke", f, op.Hash(), err)
	}
	c.metrics.revocations.Inc()
	c.logger.Info(
		"proposal revoked",
		"function", f.Name(),
		"op_hash", op.Hash().String(),
		"tx_hash", receipt.TxHash.String(),
	)
	c.publish(RevokedEventType, f, op, receipt)
	return receipt, nil
}

// Maturity reads the registered maturity timestamp (unix seconds) for the
// proposal invoking f with the given argument words. It returns zero when
// no pending proposal exists. The value is advisory: it can be stale the
// instant it returns.
func (c *Coordinator) Maturity(
	ctx context.Context,
	f govfunc.Func,
	args ...ledger.Word,
) (uint64, error) {
	op, err := f.EncodeOp(args...)
	if err != nil {
		return 0, err
	}
	wrapped := ledger.PackBytesArg(ledger.ExecutableAtSelector, op.Bytes())
	data, err := c.gateway.Call(ctx, wrapped)
	if err != nil {
		return 0, NewOperationError("maturity", f, op.Hash(), err)
	}
	maturity, err := ledger.WordToUint64(data)
	if err != nil {
		return 0, NewOperationError("maturity", f, op.Hash(), err)
	}
	return maturity, nil
}

// Duration reads the currently effective timelock duration, in seconds,
// for submissions of f. The value is advisory: it can be stale the
// instant it returns, and a proposal's maturity is always fixed from the
// duration the ledger observes at submission time.
func (c *Coordinator) Duration(
	ctx context.Context,
	f govfunc.Func,
) (uint64, error) {
	if !f.Valid() {
		return 0, govfunc.NewUnknownFunctionError(string(f))
	}
	op := ledger.NewEncodedOp(
		ledger.TimelockSelector,
		ledger.SelectorWord(f.Selector()).Bytes(),
	)
	data, err := c.gateway.Call(ctx, op)
	if err != nil {
		return 0, NewOperationError("duration", f, op.Hash(), err)
	}
	duration, err := ledger.WordToUint64(data)
	if err != nil {
		return 0, NewOperationError("duration", f, op.Hash(), err)
	}
	return duration, nil
}

func (c *Coordinator) publish(
	eventType event.EventType,
	f govfunc.Func,
	op ledger.EncodedOp,
	receipt *ledger.Receipt,
) {
	if c.config.EventBus == nil {
		return
	}
	c.config.EventBus.Publish(
		eventType,
		event.NewEvent(
			eventType,
			ProposalEvent{
				Func:   f,
				OpHash: op.Hash(),
				TxHash: receipt.TxHash.String(),
			},
		),
	)
}
