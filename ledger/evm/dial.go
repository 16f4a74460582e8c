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

package evm

import (
	"fmt"
	"log/slog"

	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Dial connects to an Ethereum RPC endpoint and returns a read-only
// gateway for the vault at the given address. Attach a TxSender via
// GatewayConfig and NewGateway when write access is needed.
func Dial(
	ctx context.Context,
	rpcURL string,
	vault common.Address,
	logger *slog.Logger,
) (*Gateway, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", rpcURL, err)
	}
	return NewGateway(GatewayConfig{
		Backend: client,
		Vault:   vault,
		Logger:  logger,
	})
}
