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

// Package ledgermock provides an in-memory ledger implementing the
// vault's full two-phase governance semantics: pending proposals keyed by
// operation hash with maturity fixed at submission time, execute and
// revoke gating, abdication, and atomic all-or-nothing batches. Time is a
// manual clock so tests control maturity directly.
package ledgermock

import (
	"context"
	"math/big"
	"sync"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/ethereum/go-ethereum/common"
)

// StartTime is the initial clock value for a new mock ledger.
const StartTime = 1_700_000_000

type proposal struct {
	op       ledger.EncodedOp
	maturity uint64
}

// Ledger is an in-memory ledger.Gateway with vault governance semantics.
type Ledger struct {
	mu          sync.Mutex
	now         uint64
	blockNumber uint64
	authorized  bool
	failNext    error
	state       *vaultState
}

func New() *Ledger {
	return &Ledger{
		now:        StartTime,
		authorized: true,
		state:      newVaultState(),
	}
}

// Advance moves the ledger clock forward by the given number of seconds.
func (l *Ledger) Advance(seconds uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now += seconds
}

// Now returns the current ledger timestamp.
func (l *Ledger) Now() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

// SetTimelock fixes a function's timelock duration directly, bypassing
// governance. Test fixture only.
func (l *Ledger) SetTimelock(f govfunc.Func, seconds uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.timelocks[f.Selector()] = seconds
}

// SetAuthorized toggles whether the calling client holds the ledger-side
// role for mutating operations.
func (l *Ledger) SetAuthorized(authorized bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.authorized = authorized
}

// FailNext makes the next gateway call fail with a transport error
// wrapping cause.
func (l *Ledger) FailNext(cause error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failNext = cause
}

// HasPending reports whether a pending proposal exists for op.
func (l *Ledger) HasPending(op ledger.EncodedOp) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.state.proposals[op.Hash()]
	return ok
}

// PendingCount returns the number of pending proposals.
func (l *Ledger) PendingCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.state.proposals)
}

// Abdicated reports whether submission rights for f have been foreclosed.
func (l *Ledger) Abdicated(f govfunc.Func) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.abdicated[f.Selector()]
}

func (l *Ledger) takeFailure(opName string) error {
	if l.failNext == nil {
		return nil
	}
	cause := l.failNext
	l.failNext = nil
	return ledger.NewLedgerUnavailableError(opName, cause)
}

// Call implements ledger.Gateway.
func (l *Ledger) Call(
	_ context.Context,
	op ledger.EncodedOp,
) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.takeFailure("call"); err != nil {
		return nil, err
	}
	return l.state.read(op, l.now)
}

// Execute implements ledger.Gateway.
func (l *Ledger) Execute(
	_ context.Context,
	op ledger.EncodedOp,
) (*ledger.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.takeFailure("execute"); err != nil {
		return nil, err
	}
	if !l.authorized {
		return nil, ledger.ErrUnauthorized
	}
	// Single operations get the same all-or-nothing treatment as batches
	// so a failing multicall leaves no partial state behind.
	snapshot := l.state.clone()
	if err := l.apply(op); err != nil {
		l.state = snapshot
		return nil, err
	}
	return l.confirm(op), nil
}

// Batch implements ledger.Gateway. Operations apply in order within one
// atomic unit; if any operation fails the whole batch is rolled back.
func (l *Ledger) Batch(
	_ context.Context,
	ops []ledger.EncodedOp,
) (*ledger.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.takeFailure("batch"); err != nil {
		return nil, err
	}
	if !l.authorized {
		return nil, ledger.ErrUnauthorized
	}
	snapshot := l.state.clone()
	for _, op := range ops {
		if err := l.apply(op); err != nil {
			l.state = snapshot
			return nil, err
		}
	}
	items := make([][]byte, 0, len(ops))
	for _, op := range ops {
		items = append(items, op.Bytes())
	}
	return l.confirm(ledger.PackBytesArrayArg(ledger.MulticallSelector, items)), nil
}

func (l *Ledger) confirm(op ledger.EncodedOp) *ledger.Receipt {
	l.blockNumber++
	return &ledger.Receipt{
		TxHash:      common.Hash(op.Hash()),
		BlockNumber: l.blockNumber,
		Status:      ledger.ReceiptStatusConfirmed,
	}
}

// apply interprets one encoded operation against current state. Callers
// own snapshotting; apply may leave partial state behind on error.
func (l *Ledger) apply(op ledger.EncodedOp) error {
	switch op.Selector() {
	case ledger.SubmitSelector:
		return l.applySubmit(op.Args())
	case ledger.RevokeSelector:
		return l.applyRevoke(op.Args())
	case ledger.MulticallSelector:
		items, err := ledger.UnpackBytesArrayArg(op.Args())
		if err != nil {
			return err
		}
		for _, item := range items {
			innerOp, err := ledger.EncodedOpFromBytes(item)
			if err != nil {
				return err
			}
			if err := l.apply(innerOp); err != nil {
				return err
			}
		}
		return nil
	}
	if f, ok := govfunc.BySelector(op.Selector()); ok {
		return l.applyGoverned(f, op)
	}
	return l.state.applyDirect(op)
}

func (l *Ledger) applySubmit(args []byte) error {
	inner, err := ledger.UnpackBytesArg(args)
	if err != nil {
		return err
	}
	innerOp, err := ledger.EncodedOpFromBytes(inner)
	if err != nil {
		return err
	}
	sel := innerOp.Selector()
	if _, ok := govfunc.BySelector(sel); !ok {
		return govfunc.NewUnknownFunctionError(sel.String())
	}
	if l.state.abdicated[sel] {
		return ledger.ErrSubmissionAbdicated
	}
	// Maturity is fixed here, from the duration in effect right now.
	// Later duration changes must not move it.
	l.state.proposals[innerOp.Hash()] = proposal{
		op:       innerOp,
		maturity: l.now + l.state.timelocks[sel],
	}
	return nil
}

func (l *Ledger) applyRevoke(args []byte) error {
	inner, err := ledger.UnpackBytesArg(args)
	if err != nil {
		return err
	}
	innerOp, err := ledger.EncodedOpFromBytes(inner)
	if err != nil {
		return err
	}
	if _, ok := l.state.proposals[innerOp.Hash()]; !ok {
		return ledger.ErrNoSuchProposal
	}
	delete(l.state.proposals, innerOp.Hash())
	return nil
}

func (l *Ledger) applyGoverned(f govfunc.Func, op ledger.EncodedOp) error {
	p, ok := l.state.proposals[op.Hash()]
	if !ok {
		return ledger.ErrNoSuchProposal
	}
	if l.now < p.maturity {
		return ledger.ErrNotMatured
	}
	delete(l.state.proposals, op.Hash())
	return l.state.applyGovernedEffect(f, op.Args())
}

// argWord extracts the i-th argument word.
func argWord(args []byte, i int) ([]byte, error) {
	if len(args) < (i+1)*ledger.WordSize {
		return nil, ledger.ErrMalformedOp
	}
	return args[i*ledger.WordSize : (i+1)*ledger.WordSize], nil
}

func argSelector(args []byte, i int) (ledger.Selector, error) {
	var sel ledger.Selector
	word, err := argWord(args, i)
	if err != nil {
		return sel, err
	}
	copy(sel[:], word[:ledger.SelectorSize])
	return sel, nil
}

func argAddress(args []byte, i int) (common.Address, error) {
	word, err := argWord(args, i)
	if err != nil {
		return common.Address{}, err
	}
	return ledger.WordToAddress(word)
}

func argUint64(args []byte, i int) (uint64, error) {
	word, err := argWord(args, i)
	if err != nil {
		return 0, err
	}
	return ledger.WordToUint64(word)
}

func argBig(args []byte, i int) (*big.Int, error) {
	word, err := argWord(args, i)
	if err != nil {
		return nil, err
	}
	return ledger.WordToBig(word)
}

func argBool(args []byte, i int) (bool, error) {
	word, err := argWord(args, i)
	if err != nil {
		return false, err
	}
	return ledger.WordToBool(word)
}

func argID(args []byte, i int) ([32]byte, error) {
	var id [32]byte
	word, err := argWord(args, i)
	if err != nil {
		return id, err
	}
	copy(id[:], word)
	return id, nil
}
