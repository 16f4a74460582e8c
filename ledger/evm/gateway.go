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

// Package evm binds the ledger gateway contract to an EVM chain hosting
// the vault. Reads go through eth_call; writes are handed to a
// caller-supplied transaction sender, which owns keys, gas and signing.
package evm

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"time"

	"github.com/blinklabs-io/paramlock/ledger"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// DefaultConfirmPollInterval is how often WaitConfirmed polls for a
// transaction receipt.
const DefaultConfirmPollInterval = 2 * time.Second

// Backend is the subset of an Ethereum RPC client the gateway uses.
// *ethclient.Client satisfies it.
type Backend interface {
	CallContract(
		ctx context.Context,
		msg ethereum.CallMsg,
		blockNumber *big.Int,
	) ([]byte, error)
	TransactionReceipt(
		ctx context.Context,
		txHash common.Hash,
	) (*types.Receipt, error)
}

// TxSender signs and broadcasts a transaction carrying the given calldata
// to the vault. Key handling, gas policy and nonce management are the
// sender's concern, not this client's.
type TxSender interface {
	SendTransaction(
		ctx context.Context,
		to common.Address,
		calldata []byte,
	) (common.Hash, error)
}

type GatewayConfig struct {
	Backend             Backend
	Sender              TxSender
	Logger              *slog.Logger
	Vault               common.Address
	ConfirmPollInterval time.Duration
}

// Gateway implements ledger.Gateway against an EVM chain.
type Gateway struct {
	config GatewayConfig
	logger *slog.Logger
}

func NewGateway(config GatewayConfig) (*Gateway, error) {
	if config.Backend == nil {
		return nil, ErrNilBackend
	}
	if (config.Vault == common.Address{}) {
		return nil, ErrNoVaultAddress
	}
	if config.ConfirmPollInterval <= 0 {
		config.ConfirmPollInterval = DefaultConfirmPollInterval
	}
	g := &Gateway{config: config}
	if config.Logger == nil {
		g.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	} else {
		g.logger = config.Logger.With("component", "evm")
	}
	return g, nil
}

// Call implements ledger.Gateway via eth_call against the latest block.
func (g *Gateway) Call(
	ctx context.Context,
	op ledger.EncodedOp,
) ([]byte, error) {
	msg := ethereum.CallMsg{
		To:   &g.config.Vault,
		Data: op.Bytes(),
	}
	data, err := g.config.Backend.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, mapCallError("call", err)
	}
	return data, nil
}

// Execute implements ledger.Gateway. The returned receipt is pending; the
// caller decides whether to block on confirmation via WaitConfirmed.
func (g *Gateway) Execute(
	ctx context.Context,
	op ledger.EncodedOp,
) (*ledger.Receipt, error) {
	return g.send(ctx, op.Bytes())
}

// Batch implements ledger.Gateway by wrapping the listed operations into
// a single multicall transaction. The chain applies a transaction
// atomically, which is exactly the all-or-nothing unit the gateway
// contract requires.
func (g *Gateway) Batch(
	ctx context.Context,
	ops []ledger.EncodedOp,
) (*ledger.Receipt, error) {
	items := make([][]byte, 0, len(ops))
	for _, op := range ops {
		items = append(items, op.Bytes())
	}
	multicall := ledger.PackBytesArrayArg(ledger.MulticallSelector, items)
	return g.send(ctx, multicall.Bytes())
}

func (g *Gateway) send(
	ctx context.Context,
	calldata []byte,
) (*ledger.Receipt, error) {
	if g.config.Sender == nil {
		return nil, ErrNoSender
	}
	txHash, err := g.config.Sender.SendTransaction(
		ctx,
		g.config.Vault,
		calldata,
	)
	if err != nil {
		return nil, mapCallError("execute", err)
	}
	g.logger.Debug(
		"transaction sent",
		"tx_hash", txHash.String(),
	)
	return &ledger.Receipt{
		TxHash: txHash,
		Status: ledger.ReceiptStatusPending,
	}, nil
}

// WaitConfirmed polls until the receipt's transaction is mined, then
// updates its status and block number in place. The context owns the
// timeout; this client imposes none of its own.
func (g *Gateway) WaitConfirmed(
	ctx context.Context,
	receipt *ledger.Receipt,
) error {
	ticker := time.NewTicker(g.config.ConfirmPollInterval)
	defer ticker.Stop()
	for {
		txReceipt, err := g.config.Backend.TransactionReceipt(
			ctx,
			receipt.TxHash,
		)
		if err == nil && txReceipt != nil {
			receipt.BlockNumber = txReceipt.BlockNumber.Uint64()
			if txReceipt.Status == types.ReceiptStatusSuccessful {
				receipt.Status = ledger.ReceiptStatusConfirmed
			} else {
				receipt.Status = ledger.ReceiptStatusReverted
			}
			return nil
		}
		if err != nil && err != ethereum.NotFound {
			return ledger.NewLedgerUnavailableError("confirm", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
