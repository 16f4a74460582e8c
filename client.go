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

// Package paramlock is a client for a permissioned, timelock-gated vault
// configuration protocol. Every governed parameter change is a two-phase
// proposal (submit, then execute after the function's delay) with an
// atomic instant path when the delay is zero. The root Client wires a
// ledger gateway, the proposal coordinator and the per-domain vault
// facades together.
package paramlock

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/blinklabs-io/paramlock/event"
	"github.com/blinklabs-io/paramlock/ledger"
	"github.com/blinklabs-io/paramlock/ledger/evm"
	"github.com/blinklabs-io/paramlock/timelock"
	"github.com/blinklabs-io/paramlock/vault"
)

type Client struct {
	config      Config
	logger      *slog.Logger
	eventBus    *event.EventBus
	gateway     ledger.Gateway
	coordinator *timelock.Coordinator
	adapters    *vault.Adapters
	caps        *vault.Caps
	fees        *vault.Fees
	gates       *vault.Gates
	roles       *vault.Roles
	registry    *vault.AdapterRegistry
	maxRate     *vault.MaxRate
	penalties   *vault.Penalties
}

// NewClient builds a Client from the given options. Either WithGateway or
// WithRPCEndpoint together with WithVaultAddress must be provided.
func NewClient(ctx context.Context, opts ...ConfigOptionFunc) (*Client, error) {
	config := NewConfig(opts...)
	if err := config.validate(); err != nil {
		return nil, err
	}
	c := &Client{
		config: config,
	}
	if config.logger == nil {
		// Create logger to throw away logs
		// We do this so we don't have to add guards around every log operation
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	} else {
		c.logger = config.logger
	}
	c.gateway = config.gateway
	if c.gateway == nil {
		gateway, err := evm.Dial(
			ctx,
			config.rpcEndpoint,
			config.vaultAddress,
			c.logger,
		)
		if err != nil {
			return nil, fmt.Errorf("building EVM gateway: %w", err)
		}
		c.gateway = gateway
	}
	c.eventBus = config.eventBus
	if c.eventBus == nil {
		c.eventBus = event.NewEventBus(config.promRegistry)
	}
	coordinator, err := timelock.NewCoordinator(timelock.CoordinatorConfig{
		PromRegistry:            config.promRegistry,
		Gateway:                 c.gateway,
		Logger:                  c.logger,
		EventBus:                c.eventBus,
		DisableInstantPreflight: !config.instantPreflight,
	})
	if err != nil {
		return nil, err
	}
	c.coordinator = coordinator
	vaultConfig := vault.Config{
		Coordinator: coordinator,
		Gateway:     c.gateway,
	}
	c.adapters = vault.NewAdapters(vaultConfig)
	c.caps = vault.NewCaps(vaultConfig)
	c.fees = vault.NewFees(vaultConfig)
	c.gates = vault.NewGates(vaultConfig)
	c.roles = vault.NewRoles(vaultConfig)
	c.registry = vault.NewAdapterRegistry(vaultConfig)
	c.maxRate = vault.NewMaxRate(vaultConfig)
	c.penalties = vault.NewPenalties(vaultConfig)
	return c, nil
}

// Timelock returns the proposal coordinator for direct submit, execute,
// instant-apply and revoke of any governed function.
func (c *Client) Timelock() *timelock.Coordinator {
	return c.coordinator
}

func (c *Client) Adapters() *vault.Adapters {
	return c.adapters
}

func (c *Client) Caps() *vault.Caps {
	return c.caps
}

func (c *Client) Fees() *vault.Fees {
	return c.fees
}

func (c *Client) Gates() *vault.Gates {
	return c.gates
}

func (c *Client) Roles() *vault.Roles {
	return c.roles
}

func (c *Client) AdapterRegistry() *vault.AdapterRegistry {
	return c.registry
}

func (c *Client) MaxRate() *vault.MaxRate {
	return c.maxRate
}

func (c *Client) Penalties() *vault.Penalties {
	return c.penalties
}

func (c *Client) EventBus() *event.EventBus {
	return c.eventBus
}

func (c *Client) Gateway() ledger.Gateway {
	return c.gateway
}
