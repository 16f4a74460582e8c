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
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type ctxKey string

const configContextKey ctxKey = "paramlock.config"

func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok {
		return nil
	}
	return cfg
}

type Config struct {
	RpcEndpoint      string `yaml:"rpcEndpoint"                                   split_words:"true"`
	VaultAddress     string `yaml:"vaultAddress"                                  split_words:"true"`
	MetricsPort      uint   `yaml:"metricsPort"                                   split_words:"true"`
	InstantPreflight bool   `yaml:"instantPreflight" envconfig:"PARAMLOCK_INSTANT_PREFLIGHT"`
}

var globalConfig = &Config{
	RpcEndpoint:      "http://localhost:8545",
	VaultAddress:     "",
	MetricsPort:      12798,
	InstantPreflight: true,
}

func LoadConfig(configFile string) (*Config, error) {
	// Load config file as YAML if provided
	if configFile == "" {
		// Check for config file in this path: ~/.paramlock/paramlock.yaml
		if homeDir, err := os.UserHomeDir(); err == nil {
			userPath := filepath.Join(homeDir, ".paramlock", "paramlock.yaml")
			if _, err := os.Stat(userPath); err == nil {
				configFile = userPath
			}
		}

		// Try to check for /etc/paramlock/paramlock.yaml if still not found
		if configFile == "" {
			systemPath := "/etc/paramlock/paramlock.yaml"
			if _, err := os.Stat(systemPath); err == nil {
				configFile = systemPath
			}
		}
	}

	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		err = yaml.Unmarshal(buf, globalConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	// Process environment variables
	err := envconfig.Process("paramlock", globalConfig)
	if err != nil {
		return nil, fmt.Errorf("error processing environment: %+w", err)
	}

	// Validate vault address when provided
	if globalConfig.VaultAddress != "" &&
		!common.IsHexAddress(globalConfig.VaultAddress) {
		return nil, fmt.Errorf(
			"invalid vault address: %q",
			globalConfig.VaultAddress,
		)
	}
	return globalConfig, nil
}

func GetConfig() *Config {
	return globalConfig
}

// Vault returns the configured vault address
func (c *Config) Vault() common.Address {
	return common.HexToAddress(c.VaultAddress)
}
