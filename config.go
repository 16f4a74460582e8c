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

package paramlock

import (
	"errors"
	"log/slog"

	"github.com/blinklabs-io/paramlock/event"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	promRegistry     prometheus.Registerer
	logger           *slog.Logger
	eventBus         *event.EventBus
	gateway          ledger.Gateway
	rpcEndpoint      string
	vaultAddress     common.Address
	instantPreflight bool
}

// NewConfig builds the default configuration modified by any options.
func NewConfig(opts ...ConfigOptionFunc) Config {
	c := Config{
		instantPreflight: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

type ConfigOptionFunc func(*Config)

// WithGateway provides the ledger gateway directly. Takes precedence over
// WithRPCEndpoint.
func WithGateway(gateway ledger.Gateway) ConfigOptionFunc {
	return func(c *Config) {
		c.gateway = gateway
	}
}

// WithRPCEndpoint configures an Ethereum RPC endpoint to build a
// read-only EVM gateway from. Requires WithVaultAddress.
func WithRPCEndpoint(url string) ConfigOptionFunc {
	return func(c *Config) {
		c.rpcEndpoint = url
	}
}

// WithVaultAddress sets the vault contract address for gateways built
// from an RPC endpoint.
func WithVaultAddress(addr common.Address) ConfigOptionFunc {
	return func(c *Config) {
		c.vaultAddress = addr
	}
}

func WithLogger(logger *slog.Logger) ConfigOptionFunc {
	return func(c *Config) {
		c.logger = logger
	}
}

func WithPrometheusRegistry(registry prometheus.Registerer) ConfigOptionFunc {
	return func(c *Config) {
		c.promRegistry = registry
	}
}

// WithEventBus provides an existing event bus to publish proposal
// lifecycle events on instead of creating a new one.
func WithEventBus(bus *event.EventBus) ConfigOptionFunc {
	return func(c *Config) {
		c.eventBus = bus
	}
}

// WithInstantPreflight toggles the advisory timelock read performed
// before an instant-apply batch (default on). The read only provides
// fast failure; atomic batch semantics hold either way.
func WithInstantPreflight(enabled bool) ConfigOptionFunc {
	return func(c *Config) {
		c.instantPreflight = enabled
	}
}

func (c *Config) validate() error {
	if c.gateway != nil {
		return nil
	}
	if c.rpcEndpoint == "" {
		return errors.New("no ledger gateway or RPC endpoint configured")
	}
	if (c.vaultAddress == common.Address{}) {
		return errors.New("RPC endpoint configured without vault address")
	}
	return nil
}
